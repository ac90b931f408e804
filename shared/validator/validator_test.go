package validator_test

import (
	"agrirent/shared/validator"
	"strings"
	"testing"
)

type registerForm struct {
	FullName    string `validate:"required" json:"fullName"`
	PhoneNumber string `validate:"required,mobile" json:"phoneNumber"`
	Email       string `validate:"omitempty,email" json:"email"`
	Role        string `validate:"oneof=FARMER OWNER" json:"role"`
}

type slotForm struct {
	StartDate string `validate:"required,isodate" json:"startDate"`
	StartTime string `validate:"required,hhmm" json:"startTime"`
}

type imageForm struct {
	ContentType string `validate:"mimetypes=image/jpeg image/png image/webp" json:"contentType"`
	Size        int64  `validate:"maxfilesize=5" json:"size"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *registerForm
		expectError bool
	}{
		{
			name:        "valid farmer",
			data:        &registerForm{FullName: "Ramesh Patil", PhoneNumber: "9876543210", Role: "FARMER"},
			expectError: false,
		},
		{
			name:        "missing name",
			data:        &registerForm{PhoneNumber: "9876543210", Role: "FARMER"},
			expectError: true,
		},
		{
			name:        "short phone number",
			data:        &registerForm{FullName: "Ramesh Patil", PhoneNumber: "98765", Role: "FARMER"},
			expectError: true,
		},
		{
			name:        "invalid email",
			data:        &registerForm{FullName: "Ramesh Patil", PhoneNumber: "9876543210", Email: "ramesh", Role: "OWNER"},
			expectError: true,
		},
		{
			name:        "admin cannot self register",
			data:        &registerForm{FullName: "Ramesh Patil", PhoneNumber: "9876543210", Role: "ADMIN"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestCustomTags(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid hhmm", field: "09:30", tag: "hhmm"},
		{name: "invalid hhmm", field: "9.30am", tag: "hhmm", expectError: true},
		{name: "out of range hhmm", field: "25:00", tag: "hhmm", expectError: true},
		{name: "valid isodate", field: "2025-06-01", tag: "isodate"},
		{name: "invalid isodate", field: "01-06-2025", tag: "isodate", expectError: true},
		{name: "valid mobile", field: "9123456789", tag: "mobile"},
		{name: "mobile with country code", field: "+919123456789", tag: "mobile", expectError: true},
		{name: "allowed mimetype", field: "image/png", tag: "mimetypes=image/jpeg image/png"},
		{name: "mimetype with parameters", field: "image/jpeg; charset=binary", tag: "mimetypes=image/jpeg image/png"},
		{name: "rejected mimetype", field: "application/pdf", tag: "mimetypes=image/jpeg image/png", expectError: true},
		{name: "small file", field: int64(1024), tag: "maxfilesize=5"},
		{name: "large file", field: int64(6 * 1024 * 1024), tag: "maxfilesize=5", expectError: true},
		{name: "empty zero value", field: "", tag: "empty"},
		{name: "empty with value", field: "x", tag: "empty", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{name: "valid slot", jsonBody: `{"startDate":"2025-06-01","startTime":"08:00"}`},
		{name: "bad time", jsonBody: `{"startDate":"2025-06-01","startTime":"8am"}`, expectError: true},
		{name: "malformed JSON", jsonBody: `{"startDate":}`, expectError: true},
		{name: "empty JSON", jsonBody: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data slotForm
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		contains string
	}{
		{name: "json field name is used", data: &registerForm{PhoneNumber: "9876543210", Role: "FARMER"}, contains: "fullName is required"},
		{name: "time message", data: &slotForm{StartDate: "2025-06-01", StartTime: "noon"}, contains: "startTime must be a time in HH:MM format"},
		{name: "file size message", data: &imageForm{ContentType: "image/png", Size: 10 << 20}, contains: "size must not exceed 5 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			switch v := tt.data.(type) {
			case *registerForm:
				err = validator.ValidateStruct(v)
			case *slotForm:
				err = validator.ValidateStruct(v)
			case *imageForm:
				err = validator.ValidateStruct(v)
			}

			if err == nil {
				t.Fatal("expected validation error")
			}

			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected message containing %q, got %q", tt.contains, err.Error())
			}
		})
	}
}
