// Package registration contains the HTTP handlers for the student
// self-registration flow.
//
// HANDLER PATTERN — CLOSURE / FACTORY:
// The router expects func(http.ResponseWriter, *http.Request), which
// leaves no room for dependencies. Each exported function here accepts
// its dependencies (the storage backend), builds what it needs once,
// and returns the actual handler as a closure:
//
//	router.HandleFunc("POST /register-student", registration.New(storage))
//	//                                          New(storage) runs ONCE at
//	//                                          startup; the returned func
//	//                                          runs on every request.
package registration

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aanand-mishra/student-registration/internal/storage"
	"github.com/aanand-mishra/student-registration/internal/types"
	"github.com/aanand-mishra/student-registration/internal/utils/response"
	"github.com/aanand-mishra/student-registration/internal/validation"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for stored password hashes. Cost 10
// keeps a single hash around ~100ms-class work, slow enough that
// offline brute-force against a leaked store is expensive. Never swap
// bcrypt for a fast general-purpose hash.
const bcryptCost = 10

type registeredStudent struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type registerResponse struct {
	response.Response
	Student registeredStudent `json:"student"`
}

type listResponse struct {
	Success  bool            `json:"success"`
	Students []types.Profile `json:"students"`
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /register-student
// Validates the submitted form, hashes the password, and persists the
// new registrant.
//
// Success response (201 Created):
//
//	{ "success": true, "message": "Student registered successfully!",
//	  "student": { "id": "...", "fullName": "...", "email": "..." } }
//
// Error responses:
//
//	400 Bad Request  — empty/malformed body, failed validation, or
//	                   duplicate email; message targets the field
//	500 Internal     — storage or hashing failure; generic message,
//	                   detail logged server-side only
//
// ─────────────────────────────────────────────────────────────────────────────
func New(store storage.Storage) http.HandlerFunc {
	// Built once per route registration; the rule set is shared by all
	// requests.
	rules := validation.New()

	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("registering a student")

		var req types.RegisterRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Error("request body is empty"))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Error("invalid request body"))
			return
		}

		// Re-run the full rule set regardless of what the browser
		// already checked. The response carries the first fault; the
		// form script maps its message back onto the field.
		if faults := rules.Check(req); len(faults) > 0 {
			slog.Info("registration rejected",
				slog.String("field", faults[0].Field),
				slog.String("reason", faults[0].Message))
			response.WriteJSON(w, http.StatusBadRequest,
				response.Error(faults[0].Message))
			return
		}

		// Hash before touching the store so the plaintext never travels
		// further than this frame. The request struct is not logged.
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			slog.Error("failed to hash password", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Error("Internal server error"))
			return
		}

		// UUIDv7: millisecond timestamp plus random bits — unique with
		// overwhelming probability, no store lookup needed.
		id, err := uuid.NewV7()
		if err != nil {
			slog.Error("failed to generate id", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Error("Internal server error"))
			return
		}

		student := req.Record(id.String(), string(hash), time.Now().UTC())

		if err := store.InsertStudent(student); err != nil {
			if errors.Is(err, storage.ErrEmailRegistered) {
				response.WriteJSON(w, http.StatusBadRequest,
					response.Error("Email already registered"))
				return
			}
			slog.Error("failed to store student", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Error("Internal server error"))
			return
		}

		slog.Info("student registered",
			slog.String("id", student.ID),
			slog.String("email", student.Email))

		response.WriteJSON(w, http.StatusCreated, registerResponse{
			Response: response.Response{
				Success: true,
				Message: "Student registered successfully!",
			},
			Student: registeredStudent{
				ID:       student.ID,
				FullName: student.FullName,
				Email:    student.Email,
			},
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /students
// Returns every registrant with the password hash stripped.
//
// Success response (200 OK):
//
//	{ "success": true, "students": [ { "id": ..., "fullName": ... } ] }
//
// Returns an empty array (not null) when there are no registrants.
//
// Inspection-only and unauthenticated — it exposes registrant contact
// details to anyone who can reach the port, so keep it off anything
// public-facing.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")

		students, err := store.ListStudents()
		if err != nil {
			slog.Error("failed to list students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Error("Error fetching students"))
			return
		}

		profiles := make([]types.Profile, 0, len(students))
		for _, student := range students {
			profiles = append(profiles, student.Profile())
		}

		response.WriteJSON(w, http.StatusOK, listResponse{
			Success:  true,
			Students: profiles,
		})
	}
}
