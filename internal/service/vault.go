package service

import (
	"context"

	"github.com/icebox-archive/icebox/internal/adapter"
	"github.com/icebox-archive/icebox/internal/logger"
	"github.com/icebox-archive/icebox/models"
)

// VaultAdmin covers the vault-level administrative operations. These are thin
// passthroughs to the remote service; vaults carry no local state.
type VaultAdmin struct {
	remote adapter.VaultService
	log    *logger.Logger
}

func NewVaultAdmin(remote adapter.VaultService, log *logger.Logger) *VaultAdmin {
	return &VaultAdmin{remote: remote, log: log}
}

func (v *VaultAdmin) List(ctx context.Context) ([]models.Vault, error) {
	return v.remote.ListVaults(ctx)
}

func (v *VaultAdmin) Create(ctx context.Context, vault string) error {
	if err := v.remote.CreateVault(ctx, vault); err != nil {
		return err
	}
	v.log.Info().Str("vault", vault).Msg("vault created")
	return nil
}

// Delete removes an empty vault. The remote side rejects deletion of
// non-empty vaults.
func (v *VaultAdmin) Delete(ctx context.Context, vault string) error {
	if err := v.remote.DeleteVault(ctx, vault); err != nil {
		return err
	}
	v.log.Info().Str("vault", vault).Msg("vault deleted")
	return nil
}

// Jobs lists the vault's remote jobs as the service reports them.
func (v *VaultAdmin) Jobs(ctx context.Context, vault string) ([]models.Job, error) {
	return v.remote.ListJobs(ctx, vault)
}
