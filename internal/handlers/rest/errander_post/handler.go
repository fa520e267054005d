package errander_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Bamzhie/errander-api/internal/entities"
	"github.com/Bamzhie/errander-api/internal/handlers/rest/dto"
	"github.com/Bamzhie/errander-api/internal/pkg/uploads"
	"github.com/Bamzhie/errander-api/internal/service/errander"
	"github.com/Bamzhie/errander-api/pkg/logger"
)

const idCardField = "idCard"

type Handler struct {
	log     handlerLogger
	service Service
	store   FileStore
}

func New(log handlerLogger, service Service, store FileStore) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		store:   store,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(uploads.MaxFileSize)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	application := entities.ErranderApplication{
		FullName:       r.FormValue("fullName"),
		PhoneNumber:    r.FormValue("phoneNumber"),
		WhatsappNumber: optionalFormValue(r, "whatsappNumber"),
		Email:          optionalFormValue(r, "email"),
		School:         r.FormValue("school"),
		HomeAddress:    r.FormValue("homeAddress"),
	}

	file, header, err := r.FormFile(idCardField)
	if err == nil {
		defer func() {
			closeErr := file.Close()
			if closeErr != nil {
				h.log.With(
					logger.NewField("error", closeErr),
				).Error("close uploaded file")
			}
		}()

		fileName, fileURL, saveErr := h.store.Save(idCardField, header.Filename, header.Size, file)
		if saveErr != nil {
			switch {
			case errors.Is(saveErr, uploads.ErrFileTooLarge):
				w.WriteHeader(http.StatusRequestEntityTooLarge)
			case errors.Is(saveErr, uploads.ErrUnsupportedFileType):
				w.WriteHeader(http.StatusBadRequest)
			default:
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}
		application.IDCardURL = &fileURL
		application.IDCardFileName = &fileName
	} else if !errors.Is(err, http.ErrMissingFile) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.SubmitApplication(r.Context(), application)
	if err != nil {
		switch {
		case errors.Is(err, errander.ErrMissingRequiredFields),
			errors.Is(err, errander.ErrInvalidPhone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, errander.ErrAlreadyApplied):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(newErranderDTO(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func optionalFormValue(r *http.Request, key string) *string {
	value := strings.TrimSpace(r.FormValue(key))
	if value == "" {
		return nil
	}
	return &value
}

func newErranderDTO(erranderEntity *entities.Errander) dto.Errander {
	return dto.Errander{
		ID:             erranderEntity.ID,
		FullName:       erranderEntity.FullName,
		PhoneNumber:    erranderEntity.PhoneNumber,
		WhatsappNumber: erranderEntity.WhatsappNumber,
		Email:          erranderEntity.Email,
		School:         erranderEntity.School,
		HomeAddress:    erranderEntity.HomeAddress,
		IDCardURL:      erranderEntity.IDCardURL,
		Status:         strings.ToLower(erranderEntity.Status.String()),
		Availability:   erranderEntity.Status.Availability(),
		IsVerified:     erranderEntity.IsVerified,
		VerifiedAt:     erranderEntity.VerifiedAt,
		CreatedAt:      erranderEntity.CreatedAt,
	}
}
