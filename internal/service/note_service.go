package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"notenest/internal/contract"
	"notenest/internal/domain/entity"
	"notenest/internal/mirror"
	"notenest/internal/utils"
	"notenest/internal/utils/apierror"
)

type NoteRepository interface {
	FindAll() ([]*entity.Note, error)
	FindByID(id string) (*entity.Note, error)
	FindByUserID(userID string) ([]*entity.Note, error)
	FindPublic() ([]*entity.Note, error)
	Search(query string) ([]*entity.Note, error)
	CreateWithFiles(note *entity.Note, files []*entity.NoteFile) error
	Save(note *entity.Note) error
	UpsertAll(notes []*entity.Note) error
	Delete(note *entity.Note) error
	FindFilesByNoteID(noteID string) ([]*entity.NoteFile, error)
	FindFileByID(id string) (*entity.NoteFile, error)
	SaveFile(file *entity.NoteFile) error
	DeleteFile(file *entity.NoteFile) error
}

type UserRepository interface {
	FindAll() ([]*entity.User, error)
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	Save(user *entity.User) error
}

type DefaultNoteService struct {
	NoteRepo   NoteRepository
	UserRepo   UserRepository
	Mirror     Mirror
	MirrorRead MirrorReader
	Validate   *validator.Validate
}

func NewNoteService(
	noteRepo NoteRepository,
	userRepo UserRepository,
	m Mirror,
	reader MirrorReader,
	validate *validator.Validate,
) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo:   noteRepo,
		UserRepo:   userRepo,
		Mirror:     m,
		MirrorRead: reader,
		Validate:   validate,
	}
}

func (n *DefaultNoteService) GetAll() ([]*contract.NoteResponse, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponses(notes), nil
}

func (n *DefaultNoteService) GetByID(id string) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) GetByUser(userID string) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.FindByUserID(userID)
	if err != nil {
		log.Errorf("failed to fetch notes for user %s: %v", userID, err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponses(notes), nil
}

func (n *DefaultNoteService) GetPublic() ([]*contract.NoteResponse, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.FindPublic()
	if err != nil {
		log.Errorf("failed to fetch public notes: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponses(notes), nil
}

func (n *DefaultNoteService) Search(query string) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	if query == "" {
		return nil, apierror.NewMissingParamError("q")
	}

	notes, err := n.NoteRepo.Search(query)
	if err != nil {
		log.Errorf("failed to search notes: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponses(notes), nil
}

// Create persists the note and its attachments in one primary
// transaction, then queues the mirror copies.
func (n *DefaultNoteService) Create(req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	user, err := n.UserRepo.FindByID(req.UserID)
	if err != nil {
		log.Errorf("failed to fetch user %s: %v", req.UserID, err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		log.Warnf("note create references missing user %s", req.UserID)
		return nil, apierror.UserNotFoundError
	}

	now := utils.NowUTC()
	note := &entity.Note{
		ID:        req.ID,
		UserID:    req.UserID,
		Title:     req.Title,
		Content:   req.Content,
		IsPublic:  req.IsPublic,
		CreatedAt: now,
		UpdatedAt: now,
	}

	files := make([]*entity.NoteFile, len(req.Files))
	for i, payload := range req.Files {
		files[i] = &entity.NoteFile{
			ID:      payload.ID,
			FileURL: payload.FileURL,
		}
	}

	if err = n.NoteRepo.CreateWithFiles(note, files); err != nil {
		log.Errorf("failed to save note: %v", err)
		return nil, apierror.InternalServerError
	}

	noteDoc := mirror.NoteDocument(note)
	fileDocs := make([]map[string]any, len(files))
	for i, file := range files {
		fileDocs[i] = mirror.NoteFileDocument(file)
	}
	noteDoc["files"] = fileDocs

	n.Mirror.Upsert(mirror.TableNotes, note.ID, noteDoc)
	for _, file := range files {
		n.Mirror.Upsert(mirror.TableNoteFiles, file.ID, mirror.NoteFileDocument(file))
	}

	return toNoteResponse(note), nil
}

// Update applies only the fields present in the request; updatedAt is
// always refreshed. The full resulting record is mirrored afterward.
func (n *DefaultNoteService) Update(id string, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	note, err := n.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = req.Content
	}
	if req.IsPublic != nil {
		note.IsPublic = *req.IsPublic
	}
	note.UpdatedAt = utils.NowUTC()

	if err = n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to update note: %v", err)
		return nil, apierror.InternalServerError
	}

	n.Mirror.Upsert(mirror.TableNotes, note.ID, mirror.NoteDocument(note))
	return toNoteResponse(note), nil
}

// Delete removes the note and, through the declared cascade, its
// attachments. Mirror copies of both are queued for deletion.
func (n *DefaultNoteService) Delete(id string) apierror.ErrorResponse {
	note, err := n.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return apierror.InternalServerError
	}

	if note == nil {
		return apierror.NotFoundError
	}

	files, err := n.NoteRepo.FindFilesByNoteID(id)
	if err != nil {
		log.Errorf("failed to fetch files of note %s: %v", id, err)
		return apierror.InternalServerError
	}

	if err = n.NoteRepo.Delete(note); err != nil {
		log.Errorf("failed to delete note: %v", err)
		return apierror.InternalServerError
	}

	n.Mirror.Delete(mirror.TableNotes, id)
	for _, file := range files {
		n.Mirror.Delete(mirror.TableNoteFiles, file.ID)
	}
	return nil
}

func (n *DefaultNoteService) Like(id string) (*contract.LikeResponse, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	note.Likes++
	if err = n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to like note: %v", err)
		return nil, apierror.InternalServerError
	}

	// The mirror applies its own atomic increment rather than the value
	// just computed, so the two counters can drift if they ever diverge.
	n.Mirror.Increment(mirror.TableNotes, id, "likes", 1)
	return &contract.LikeResponse{Message: "Like added", Likes: note.Likes}, nil
}

// Unlike refuses to drop below zero: a note without likes yields a
// distinct "nothing to remove" response and the counter stays at 0.
func (n *DefaultNoteService) Unlike(id string) (*contract.LikeResponse, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	if note.Likes == 0 {
		return nil, apierror.NoLikesToRemoveError
	}

	note.Likes--
	if err = n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to unlike note: %v", err)
		return nil, apierror.InternalServerError
	}

	n.Mirror.Increment(mirror.TableNotes, id, "likes", -1)
	return &contract.LikeResponse{Message: "Like removed", Likes: note.Likes}, nil
}

// NoteFiles returns the union of primary and mirrored file records.
// The primary rows win on id conflicts; mirror-only entries are
// appended. A mirror failure degrades the listing to primary-only.
func (n *DefaultNoteService) NoteFiles(noteID string) ([]*contract.NoteFileResponse, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(noteID)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	files, err := n.NoteRepo.FindFilesByNoteID(noteID)
	if err != nil {
		log.Errorf("failed to fetch files of note %s: %v", noteID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NoteFileResponse, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, file := range files {
		resp = append(resp, toNoteFileResponse(file))
		seen[file.ID] = true
	}

	docs, merr := n.MirrorRead.NoteFiles(noteID)
	if merr != nil {
		log.Errorf("mirror file lookup failed for note %s: %v", noteID, merr)
		return resp, nil
	}

	for _, doc := range docs {
		id, _ := doc["_id"].(string)
		if id == "" {
			id, _ = doc["id"].(string)
		}
		if id == "" || seen[id] {
			continue
		}

		fileURL, _ := doc["fileUrl"].(string)
		resp = append(resp, &contract.NoteFileResponse{
			ID:      id,
			NoteID:  noteID,
			FileURL: fileURL,
		})
		seen[id] = true
	}
	return resp, nil
}

func (n *DefaultNoteService) AddFile(req *contract.AddNoteFileRequest) (*contract.NoteFileResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	note, err := n.NoteRepo.FindByID(req.NoteID)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	file := &entity.NoteFile{
		ID:      req.ID,
		NoteID:  req.NoteID,
		FileURL: req.FileURL,
	}

	if err = n.NoteRepo.SaveFile(file); err != nil {
		log.Errorf("failed to save note file: %v", err)
		return nil, apierror.InternalServerError
	}

	n.Mirror.Upsert(mirror.TableNoteFiles, file.ID, mirror.NoteFileDocument(file))
	return toNoteFileResponse(file), nil
}

func (n *DefaultNoteService) DeleteFile(id string) apierror.ErrorResponse {
	file, err := n.NoteRepo.FindFileByID(id)
	if err != nil {
		log.Errorf("failed to fetch note file: %v", err)
		return apierror.InternalServerError
	}

	if file == nil {
		return apierror.NotFoundError
	}

	if err = n.NoteRepo.DeleteFile(file); err != nil {
		log.Errorf("failed to delete note file: %v", err)
		return apierror.InternalServerError
	}

	n.Mirror.Delete(mirror.TableNoteFiles, file.ID)
	return nil
}

// Sync merges externally produced notes into both stores; the primary
// merge is transactional, the mirror side is queued per note.
func (n *DefaultNoteService) Sync(payloads []*contract.SyncNotePayload) apierror.ErrorResponse {
	notes := make([]*entity.Note, len(payloads))
	now := utils.NowUTC()

	for i, payload := range payloads {
		// A JSON null in the array binds to a nil element.
		if payload == nil {
			return apierror.MalformedJSONError
		}

		utils.Sanitize(payload)
		if valerr := n.Validate.Struct(payload); valerr != nil {
			return apierror.FromValidationError(valerr)
		}

		createdAt := utils.ParseEpoch(payload.CreatedAt)
		if createdAt == 0 {
			createdAt = now
		}
		updatedAt := utils.ParseEpoch(payload.UpdatedAt)
		if updatedAt == 0 {
			updatedAt = now
		}

		notes[i] = &entity.Note{
			ID:        payload.ID,
			UserID:    payload.UserID,
			Title:     payload.Title,
			Content:   payload.Content,
			IsPublic:  payload.IsPublic,
			Likes:     payload.Likes,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}
	}

	if err := n.NoteRepo.UpsertAll(notes); err != nil {
		log.Errorf("failed to sync notes: %v", err)
		return apierror.InternalServerError
	}

	for _, note := range notes {
		n.Mirror.Upsert(mirror.TableNotes, note.ID, mirror.NoteDocument(note))
	}
	return nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		IsPublic:  note.IsPublic,
		Likes:     note.Likes,
		CreatedAt: utils.FormatEpoch(note.CreatedAt),
		UpdatedAt: utils.FormatEpoch(note.UpdatedAt),
	}
}

func toNoteResponses(notes []*entity.Note) []*contract.NoteResponse {
	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp
}

func toNoteFileResponse(file *entity.NoteFile) *contract.NoteFileResponse {
	return &contract.NoteFileResponse{
		ID:      file.ID,
		NoteID:  file.NoteID,
		FileURL: file.FileURL,
	}
}
