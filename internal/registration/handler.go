package registration

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/validationkit/pkg/logger"
	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// Store persists accounts.
type Store interface {
	Create(ctx context.Context, reg Registration) (Account, error)
	Get(ctx context.Context, id uuid.UUID) (Account, error)
	Authenticate(ctx context.Context, username, password string) (Account, error)
}

// Handler serves the registration API.
type Handler struct {
	store Store
	log   *slog.Logger
}

// NewHandler creates a Handler. A nil logger discards records.
func NewHandler(store Store, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{store: store, log: log.With(logger.Component("registration"))}
}

// Routes returns the API router:
//
//	POST /registrations                  register an account
//	GET  /registrations/{id}             fetch an account
//	POST /registrations/validate/{field} validate one field of a registration
//	POST /sessions                       check credentials
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Route("/registrations", func(r chi.Router) {
		r.Post("/", h.register)
		r.Get("/{id}", h.account)
		r.Post("/validate/{field}", h.validateField)
	})
	r.Post("/sessions", h.login)
	return r
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reg Registration
	if err := decode(r, &reg); err != nil {
		h.log.DebugContext(ctx, "registration payload rejected", logger.Error(err))
		writeError(w, err)
		return
	}
	reg = reg.Normalize()

	if err := validation.ValidateAll(reg); err != nil {
		h.log.InfoContext(ctx, "registration rejected", logger.Validation(err))
		writeError(w, err)
		return
	}

	acc, err := h.store.Create(ctx, reg)
	if err != nil {
		h.log.WarnContext(ctx, "registration failed", logger.Error(err))
		writeError(w, err)
		return
	}

	h.log.InfoContext(ctx, "account registered", slog.String("account_id", acc.ID.String()))
	writeData(w, http.StatusCreated, "registered", acc)
}

func (h *Handler) account(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, ErrAccountNotFound)
		return
	}

	acc, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "account", acc)
}

func (h *Handler) validateField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := chi.URLParam(r, "field")
	field, ok := Fields[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, Response{Error: &ErrorDetail{
			Code:    "not_found",
			Message: "Unknown field " + name,
		}})
		return
	}

	var reg Registration
	if err := decode(r, &reg); err != nil {
		writeError(w, err)
		return
	}
	reg = reg.Normalize()

	if err := validation.ValidateFields(reg, field); err != nil {
		h.log.DebugContext(ctx, "field rejected", logger.Field(name), logger.Validation(err))
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "valid", map[string]string{"field": name})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds Credentials
	if err := decode(r, &creds); err != nil {
		writeError(w, err)
		return
	}
	creds = creds.Normalize()
	if err := validation.ValidateAll(creds); err != nil {
		writeError(w, err)
		return
	}

	acc, err := h.store.Authenticate(ctx, creds.Username, creds.Password)
	if err != nil {
		h.log.InfoContext(ctx, "login failed", logger.Error(err))
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "authenticated", acc)
}
