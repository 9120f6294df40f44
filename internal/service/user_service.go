package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"notenest/internal/auth"
	"notenest/internal/contract"
	"notenest/internal/domain/entity"
	"notenest/internal/mirror"
	"notenest/internal/utils"
	"notenest/internal/utils/apierror"
)

type UserService struct {
	UserRepo UserRepository
	Sessions *SessionService
	Hasher   *auth.PasswordHasher
	Mirror   Mirror
	Validate *validator.Validate
}

func NewUserService(
	userRepo UserRepository,
	sessions *SessionService,
	hasher *auth.PasswordHasher,
	m Mirror,
	validate *validator.Validate,
) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Sessions: sessions,
		Hasher:   hasher,
		Mirror:   m,
		Validate: validate,
	}
}

func (u *UserService) GetAll() ([]*contract.UserResponse, apierror.ErrorResponse) {
	users, err := u.UserRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch users: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.UserResponse, len(users))
	for i, user := range users {
		resp[i] = toUserResponse(user, nil)
	}
	return resp, nil
}

func (u *UserService) GetByID(id string) (*contract.UserResponse, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch user: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.NotFoundError
	}
	return toUserResponse(user, u.Sessions.TokenForUser(user.ID)), nil
}

// Register creates the user and mirrors a document that, like the
// legacy system, carries the credential hash.
func (u *UserService) Register(req *contract.RegisterRequest) (*contract.RegisterResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	exists, err := u.UserRepo.ExistsByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check email: %v", err)
		return nil, apierror.InternalServerError
	}

	if exists {
		return nil, apierror.EmailTakenError
	}

	hash, err := u.Hasher.Hash(req.Password)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	user := &entity.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to save user: %v", err)
		return nil, apierror.InternalServerError
	}

	u.Mirror.Upsert(mirror.TableUsers, user.ID, mirror.UserDocument(user))
	return &contract.RegisterResponse{
		Message:      "User registered",
		ID:           user.ID,
		PasswordHash: user.PasswordHash,
	}, nil
}

// Login verifies credentials and issues the canonical session token.
// Unknown email and bad password are indistinguishable to the caller.
func (u *UserService) Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	user, err := u.UserRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user by email: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil || !u.Hasher.Verify(user.PasswordHash, req.Password) {
		return nil, apierror.InvalidCredentialsError
	}

	session, apierr := u.Sessions.Create(&contract.CreateSessionRequest{UserID: user.ID})
	if apierr != nil {
		return nil, apierr
	}

	return &contract.LoginResponse{
		Message: "Login successful",
		Token:   session.Token,
		User:    toUserResponse(user, &session.Token),
	}, nil
}

// Logout invalidates the presented bearer token by deleting its
// session.
func (u *UserService) Logout(token string) apierror.ErrorResponse {
	if token == "" {
		return apierror.InvalidAuthTokenError
	}
	return u.Sessions.DeleteByToken(token)
}

// Update patches the fields present in the request; a new password is
// rehashed. The mirror document is refreshed with the result.
func (u *UserService) Update(id string, req *contract.UpdateUserRequest) (*contract.UserResponse, apierror.ErrorResponse) {
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	user, err := u.UserRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch user: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.NotFoundError
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, herr := u.Hasher.Hash(*req.Password)
		if herr != nil {
			log.Errorf("failed to hash password: %v", herr)
			return nil, apierror.InternalServerError
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = utils.NowUTC()

	if err = u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to update user %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	u.Mirror.Upsert(mirror.TableUsers, user.ID, mirror.UserDocument(user))
	return toUserResponse(user, u.Sessions.TokenForUser(user.ID)), nil
}

func toUserResponse(user *entity.User, token *string) *contract.UserResponse {
	return &contract.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Token:     token,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
		UpdatedAt: utils.FormatEpoch(user.UpdatedAt),
	}
}
