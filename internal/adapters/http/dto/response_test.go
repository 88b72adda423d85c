package dto_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/home-service/internal/domain/contact"
	"github.com/jsamuelsen11/home-service/internal/domain/invitation"
	"github.com/jsamuelsen11/home-service/internal/domain/news"
	"github.com/jsamuelsen11/home-service/internal/domain/user"
	"github.com/jsamuelsen11/home-service/internal/query"
)

var testTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestToUserResponse_OmitsPassword(t *testing.T) {
	t.Parallel()

	u := user.User{
		ID: 1, FirstName: "Olena", LastName: "Koval", Email: "olena@example.com",
		Password: "correct-horse", PasswordHash: "$2a$10$abc",
		Enabled: true, Role: user.RoleUser, CreatedAt: testTime, UpdatedAt: testTime,
	}

	var buf bytes.Buffer
	if err := dto.Encode(&buf, dto.ToUserResponse(&u)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	body := buf.String()

	for _, secret := range []string{"password", "correct-horse", "$2a$10$abc"} {
		if strings.Contains(body, secret) {
			t.Errorf("body %s contains %q", body, secret)
		}
	}
	if !strings.Contains(body, `"created_at":"2026-03-01T09:00:00Z"`) {
		t.Errorf("body %s lacks RFC 3339 created_at", body)
	}
}

func TestToContactResponse_Owner(t *testing.T) {
	t.Parallel()

	c := contact.Contact{ID: 3, Type: contact.TypePhone, Phone: "+380441234567", Owner: contact.UserOwner(5)}
	got := dto.ToContactResponse(&c)

	if got.UserID == nil || *got.UserID != 5 {
		t.Errorf("UserID = %v, want 5", got.UserID)
	}
	if got.CooperationID != nil {
		t.Errorf("CooperationID = %v, want nil", *got.CooperationID)
	}
}

func TestToInvitationResponse_Status(t *testing.T) {
	t.Parallel()

	inv := invitation.Invitation{ID: 2, Name: "Ivan", Role: user.RoleAdmin, CreatedAt: testTime}
	pending := dto.ToInvitationResponse(&inv)
	if pending.Status != "pending" || pending.SentAt != nil {
		t.Errorf("pending = %+v, want status pending without sent_at", pending)
	}

	inv.MarkSent(testTime.Add(time.Hour))
	sent := dto.ToInvitationResponse(&inv)
	if sent.Status != "sent" {
		t.Errorf("Status = %q, want %q", sent.Status, "sent")
	}
	if sent.SentAt == nil || *sent.SentAt != "2026-03-01T10:00:00Z" {
		t.Errorf("SentAt = %v, want 2026-03-01T10:00:00Z", sent.SentAt)
	}
}

func TestToPageResponse(t *testing.T) {
	t.Parallel()

	page := query.Page[news.News]{
		Content:       []news.News{{ID: 8, Title: "a"}, {ID: 7, Title: "b"}},
		TotalElements: 12,
		Number:        2,
		Size:          2,
	}

	got := dto.ToPageResponse(page, dto.ToNewsResponse)

	if len(got.Content) != 2 || got.Content[0].ID != 8 {
		t.Fatalf("Content = %+v, want ids [8 7]", got.Content)
	}
	if got.TotalElements != 12 || got.PageNumber != 2 || got.PageSize != 2 {
		t.Errorf("envelope = %d/%d/%d, want 12/2/2", got.TotalElements, got.PageNumber, got.PageSize)
	}
}

func TestToPageResponse_EmptyContentIsArray(t *testing.T) {
	t.Parallel()

	got := dto.ToPageResponse(query.Page[news.News]{}, dto.ToNewsResponse)

	var buf bytes.Buffer
	if err := dto.Encode(&buf, got); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"content":[]`) {
		t.Errorf("body = %s, want empty content array", buf.String())
	}
}
