package domain

// Config mirrors ~/.loghook/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Hook                HookSettings      `yaml:"hook"`
	Dashboard           DashboardSettings `yaml:"dashboard"`
	Backup              BackupSettings    `yaml:"backup"`
	Install             InstallSettings   `yaml:"install"`
	Verify              VerifySettings    `yaml:"verify"`
	Rollback            RollbackSettings  `yaml:"rollback"`
}

// HookSettings locates the capture hook the rendered block references.
type HookSettings struct {
	Path   string `yaml:"path"`
	EnvVar string `yaml:"env_var"`
}

// DashboardSettings points at the dependent HTTP service.
type DashboardSettings struct {
	URL string `yaml:"url"`
}

// BackupSettings controls the Backup Manager.
type BackupSettings struct {
	Enabled bool `yaml:"enabled"`
}

// InstallSettings captures installation toggles.
type InstallSettings struct {
	Force  bool `yaml:"force"`
	Global bool `yaml:"global"`
	DryRun bool `yaml:"dry_run"`
}

// VerifySettings captures verification toggles.
type VerifySettings struct {
	Quick      bool   `yaml:"quick"`
	Detailed   bool   `yaml:"detailed"`
	ReportPath string `yaml:"report_path"`
}

// RollbackSettings captures rollback toggles.
type RollbackSettings struct {
	ConfirmRemoval bool `yaml:"confirm_removal"`
}
