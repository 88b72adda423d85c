package dto_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/domain/contact"
	"github.com/jsamuelsen11/home-service/internal/domain/user"
)

func ptr[T any](v T) *T { return &v }

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	if err == nil {
		return nil
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *domain.ValidationError", err)
	}
	return verr.Fields
}

func TestRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        interface{ Validate() error }
		wantFields []string
	}{
		{
			name: "valid user",
			req: &dto.CreateUserRequest{
				FirstName: "Olena", LastName: "Koval",
				Email: "olena@example.com", Password: "correct-horse",
			},
		},
		{
			name:       "user without password",
			req:        &dto.CreateUserRequest{FirstName: "Olena", LastName: "Koval", Email: "olena@example.com"},
			wantFields: []string{"password"},
		},
		{
			name:       "blank user patch",
			req:        &dto.UpdateUserRequest{FirstName: ptr(" ")},
			wantFields: []string{"first_name"},
		},
		{
			name:       "cooperation with bad usreo",
			req:        &dto.CreateCooperationRequest{Name: "Sunrise", USREO: "12"},
			wantFields: []string{"usreo"},
		},
		{
			name:       "cooperation patch with bad iban",
			req:        &dto.UpdateCooperationRequest{IBAN: ptr("not-an-iban")},
			wantFields: []string{"iban"},
		},
		{
			name: "phone contact",
			req:  &dto.CreateContactRequest{Type: "phone", Phone: "+380441234567"},
		},
		{
			name:       "contact of unknown type",
			req:        &dto.CreateContactRequest{Type: "fax"},
			wantFields: []string{"type"},
		},
		{
			name:       "contact patch with bad email",
			req:        &dto.UpdateContactRequest{Email: ptr("nope")},
			wantFields: []string{"email"},
		},
		{
			name:       "invitation with unknown role",
			req:        &dto.CreateInvitationRequest{Name: "Ivan", Email: "ivan@example.com", Role: "owner"},
			wantFields: []string{"role"},
		},
		{
			name: "empty mark-sent body",
			req:  &dto.MarkSentRequest{},
		},
		{
			name:       "news without text",
			req:        &dto.CreateNewsRequest{Title: "Water outage"},
			wantFields: []string{"text"},
		},
		{
			name:       "news patch with relative photo",
			req:        &dto.UpdateNewsRequest{PhotoURL: ptr("/img/1.png")},
			wantFields: []string{"photo_url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fields := validationFields(t, tt.req.Validate())

			if len(fields) != len(tt.wantFields) {
				t.Fatalf("fields = %v, want keys %v", fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := fields[f]; !ok {
					t.Errorf("missing field %q in %v", f, fields)
				}
			}
		})
	}
}

func TestCreateContactRequest_ToContact(t *testing.T) {
	t.Parallel()

	req := dto.CreateContactRequest{Type: "email", Main: true, Email: "board@example.com"}
	got := req.ToContact(contact.CooperationOwner(9))

	if got.Type != contact.TypeEmail {
		t.Errorf("Type = %q, want %q", got.Type, contact.TypeEmail)
	}
	if !got.Main {
		t.Error("Main = false, want true")
	}
	if got.Owner.CooperationID == nil || *got.Owner.CooperationID != 9 {
		t.Errorf("Owner = %+v, want cooperation 9", got.Owner)
	}
}

func TestCreateInvitationRequest_ToInvitation(t *testing.T) {
	t.Parallel()

	req := dto.CreateInvitationRequest{Name: "Ivan", Email: "ivan@example.com", Role: "cooperation_admin"}
	got := req.ToInvitation(4)

	if got.Role != user.RoleCooperationAdmin {
		t.Errorf("Role = %q, want %q", got.Role, user.RoleCooperationAdmin)
	}
	if got.CooperationID != 4 {
		t.Errorf("CooperationID = %d, want 4", got.CooperationID)
	}
	if got.Sent {
		t.Error("Sent = true, want false")
	}
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var req dto.CreateNewsRequest
	err := dto.Decode(strings.NewReader(`{"title":"x","text":"y","author":"z"}`), &req)
	if err == nil {
		t.Fatal("Decode() error = nil, want unknown field error")
	}
}
