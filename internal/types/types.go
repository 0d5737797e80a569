// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and validation can all import types without
// depending on each other.
package types

import "time"

// Student is one registrant as persisted in the store.
//
// The json:"..." tags match the keys the registration form submits, so
// the stored record and the wire payload stay in sync. Password holds
// the bcrypt hash, never the plaintext — it is persisted but must never
// be written into any HTTP response (use Profile for outbound records).
type Student struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	DOB         string    `json:"dob,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	BloodGroup  string    `json:"bloodGroup,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	AltPhone    string    `json:"altPhone,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	PinCode     string    `json:"pinCode,omitempty"`
	Course      string    `json:"course,omitempty"`
	Branch      string    `json:"branch,omitempty"`
	Year        string    `json:"year,omitempty"`
	College     string    `json:"college,omitempty"`
	RollNumber  string    `json:"rollNumber,omitempty"`
	Password    string    `json:"password"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Profile is a Student with the password hash stripped. This is the
// only form of a stored record that may leave the server.
type Profile struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	DOB         string    `json:"dob,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	BloodGroup  string    `json:"bloodGroup,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	AltPhone    string    `json:"altPhone,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	PinCode     string    `json:"pinCode,omitempty"`
	Course      string    `json:"course,omitempty"`
	Branch      string    `json:"branch,omitempty"`
	Year        string    `json:"year,omitempty"`
	College     string    `json:"college,omitempty"`
	RollNumber  string    `json:"rollNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Profile returns the record without its password hash.
func (s Student) Profile() Profile {
	return Profile{
		ID:          s.ID,
		FullName:    s.FullName,
		DOB:         s.DOB,
		Gender:      s.Gender,
		BloodGroup:  s.BloodGroup,
		Nationality: s.Nationality,
		Email:       s.Email,
		Phone:       s.Phone,
		AltPhone:    s.AltPhone,
		Address:     s.Address,
		City:        s.City,
		State:       s.State,
		PinCode:     s.PinCode,
		Course:      s.Course,
		Branch:      s.Branch,
		Year:        s.Year,
		College:     s.College,
		RollNumber:  s.RollNumber,
		CreatedAt:   s.CreatedAt,
	}
}

// RegisterRequest is the body of POST /register-student.
//
// The validate:"..." tags name rules checked by internal/validation.
// simple_email, phone10 and pin6 are custom tags registered there; they
// reproduce the exact patterns the browser-side validator applies, so
// both sides enforce one rule set. Field order matters: validation
// faults are reported in declaration order.
type RegisterRequest struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,simple_email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
	Phone           string `json:"phone" validate:"omitempty,phone10"`
	AltPhone        string `json:"altPhone" validate:"omitempty,phone10"`
	PinCode         string `json:"pinCode" validate:"omitempty,pin6"`
	DOB             string `json:"dob"`
	Gender          string `json:"gender"`
	BloodGroup      string `json:"bloodGroup"`
	Nationality     string `json:"nationality"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Course          string `json:"course"`
	Branch          string `json:"branch"`
	Year            string `json:"year"`
	College         string `json:"college"`
	RollNumber      string `json:"rollNumber"`
}

// Record builds the persisted Student for a validated request. The
// caller supplies the generated id, the bcrypt hash, and the creation
// time; ConfirmPassword is deliberately not carried over.
func (r RegisterRequest) Record(id, passwordHash string, createdAt time.Time) Student {
	return Student{
		ID:          id,
		FullName:    r.FullName,
		DOB:         r.DOB,
		Gender:      r.Gender,
		BloodGroup:  r.BloodGroup,
		Nationality: r.Nationality,
		Email:       r.Email,
		Phone:       r.Phone,
		AltPhone:    r.AltPhone,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		PinCode:     r.PinCode,
		Course:      r.Course,
		Branch:      r.Branch,
		Year:        r.Year,
		College:     r.College,
		RollNumber:  r.RollNumber,
		Password:    passwordHash,
		CreatedAt:   createdAt,
	}
}
