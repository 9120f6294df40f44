package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"notenest/internal/contract"
	"notenest/internal/infrastructure/storage"
	"notenest/internal/utils"
	"notenest/internal/utils/apierror"
)

type DefaultUtilRoute struct {
	Storage storage.S3Client
}

func NewUtilRoute(s3Client storage.S3Client) *DefaultUtilRoute {
	return &DefaultUtilRoute{Storage: s3Client}
}

// Upload receives a multipart file, stores it and returns the URL the
// client should send back when attaching the file to a note.
func (u *DefaultUtilRoute) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingFieldError("file"))
	}

	src, err := file.Open()
	if err != nil {
		log.Errorf("failed to open uploaded file: %v", err)
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Errorf("failed to read uploaded file: %v", err)
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}

	url, err := u.Storage.UploadFile(data, file.Filename)
	if err != nil {
		log.Errorf("failed to upload %s: %v", file.Filename, err)
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}

	return c.JSON(http.StatusCreated, &contract.UploadResponse{FileURL: url})
}

// Me echoes the authenticated user, resolved by the auth middleware.
func (u *DefaultUtilRoute) Me(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	return c.JSON(http.StatusOK, &contract.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
		UpdatedAt: utils.FormatEpoch(user.UpdatedAt),
	})
}

// HealthCheck backs the Docker Compose healthcheck.
func HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
