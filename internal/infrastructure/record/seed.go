package record

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docflowhq/docflow-backend/internal/domain/ports"
)

// Admin semeado na inicialização do store. Email e id são fixos e fazem
// parte do contrato de inicialização do layout persistido.
const (
	SeedAdminID    = "00000000-0000-0000-0000-000000000001"
	SeedAdminEmail = "admin@docflow.com"
	SeedAdminName  = "Admin Master"
)

// EnsureSeed garante o estado inicial do store: se a coleção de usuários
// estiver vazia, cria o admin e as coleções vazias de empresas e
// documentos. Idempotente: com usuários presentes, não faz nada.
func EnsureSeed(ctx context.Context, store Store, log ports.Logger) error {
	users, err := store.Read(ctx, CollectionUsers)
	if err != nil {
		return fmt.Errorf("failed to read users collection: %w", err)
	}

	if len(users) > 0 {
		return nil
	}

	admin := UserRecord{
		ID:    SeedAdminID,
		Name:  SeedAdminName,
		Email: SeedAdminEmail,
		Role:  "ADMIN",
	}

	data, err := json.Marshal(admin)
	if err != nil {
		return fmt.Errorf("failed to serialize seed admin: %w", err)
	}

	if err := store.Write(ctx, CollectionUsers, []json.RawMessage{data}); err != nil {
		return fmt.Errorf("failed to seed users collection: %w", err)
	}

	if err := store.Write(ctx, CollectionCompanies, []json.RawMessage{}); err != nil {
		return fmt.Errorf("failed to seed companies collection: %w", err)
	}

	if err := store.Write(ctx, CollectionDocuments, []json.RawMessage{}); err != nil {
		return fmt.Errorf("failed to seed documents collection: %w", err)
	}

	if log != nil {
		log.Info("record store seeded", "admin_email", SeedAdminEmail)
	}

	return nil
}
