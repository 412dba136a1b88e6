package service

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/utmhub/conversion-relay/internal/core/domain"
	"github.com/utmhub/conversion-relay/internal/core/ports"
)

func TestIntegrationService_Create_Success(t *testing.T) {
	repo := newStubIntegrationRepo()
	svc := NewIntegrationService(repo, zerolog.Nop())

	integration, err := svc.Create(context.Background(), ports.CreateIntegrationInput{
		UserID:        "user-1",
		Name:          "my store",
		Platform:      "kiwify",
		Currency:      "BRL",
		UpstreamToken: "token-abc",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if integration.ID == "" {
		t.Fatalf("expected generated id")
	}
	if integration.UserID != "user-1" || integration.Platform != "kiwify" {
		t.Fatalf("unexpected integration: %+v", integration)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted integration, got %d", len(repo.created))
	}
}

func TestIntegrationService_Create_MissingToken(t *testing.T) {
	repo := newStubIntegrationRepo()
	svc := NewIntegrationService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateIntegrationInput{
		UserID:   "user-1",
		Name:     "my store",
		Platform: "kiwify",
	})
	if !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("nothing may persist without a token, got %d rows", len(repo.created))
	}
}

func TestIntegrationService_Create_HookSecretStrength(t *testing.T) {
	repo := newStubIntegrationRepo()
	svc := NewIntegrationService(repo, zerolog.Nop())

	first, err := svc.Create(context.Background(), ports.CreateIntegrationInput{
		UserID: "user-1", UpstreamToken: "t1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(context.Background(), ports.CreateIntegrationInput{
		UserID: "user-1", UpstreamToken: "t2",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if len(first.HookSecret) != 32 {
		t.Errorf("expected 32 hex chars, got %d", len(first.HookSecret))
	}
	if _, err := hex.DecodeString(first.HookSecret); err != nil {
		t.Errorf("secret is not hex: %v", err)
	}
	if first.HookSecret == second.HookSecret {
		t.Errorf("secrets must differ per integration")
	}
	if first.ID == second.ID {
		t.Errorf("ids must differ per integration")
	}
}

func TestIntegrationService_ListForOwner(t *testing.T) {
	repo := newStubIntegrationRepo()
	svc := NewIntegrationService(repo, zerolog.Nop())

	_, _ = svc.Create(context.Background(), ports.CreateIntegrationInput{UserID: "user-1", UpstreamToken: "t1"})
	_, _ = svc.Create(context.Background(), ports.CreateIntegrationInput{UserID: "user-2", UpstreamToken: "t2"})
	_, _ = svc.Create(context.Background(), ports.CreateIntegrationInput{UserID: "user-1", UpstreamToken: "t3"})

	out, err := svc.ListForOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListForOwner returned error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 integrations for user-1, got %d", len(out))
	}
	for _, in := range out {
		if in.UserID != "user-1" {
			t.Errorf("foreign integration leaked: %+v", in)
		}
	}
}
