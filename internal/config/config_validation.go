package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants required before any component is wired up.
//
// Part sizes are deliberately not validated here: the transfer engine owns
// the power-of-two constraint and rejects bad values before any transfer
// begins, so that the same check also covers sizes passed per-command.
func (cfg *StructuredConfig) validate() error {
	if cfg.Remote.Endpoint == "" {
		return ErrInvalidRemoteConfigs
	}

	if cfg.App.AccountKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	switch cfg.Storage.DB.Driver {
	case "sqlite3", "postgres":
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Jobs.PollInterval <= 0 || cfg.Jobs.PollAttempts <= 0 {
		return ErrInvalidJobsConfigs
	}

	return nil
}
