package app

import (
	"context"

	"loghook/internal/infrastructure/backup"
	"loghook/internal/infrastructure/config"
	"loghook/internal/infrastructure/detect"
	"loghook/internal/infrastructure/marker"
	"loghook/internal/infrastructure/run"
	"loghook/internal/infrastructure/scan"
	"loghook/internal/pkg/logger"
	"loghook/internal/ports"
	"loghook/internal/services"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	ConfigProvider ports.ConfigProvider
	Scanner        ports.Scanner
	Codec          ports.MarkerCodec
	Backups        ports.BackupManager
	Detector       ports.ToolDetector
	Runner         ports.Runner
	Logger         ports.Logger

	InstallService  *services.InstallService
	RollbackService *services.RollbackService
	VerifyService   *services.VerifyService
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)
	codec := marker.NewCodec(cfg.Hook.EnvVar)
	scanner := scan.NewScanner("", "", codec)
	backups := backup.NewManager(cfg.Backup.Enabled)
	runner := run.NewLocalRunner()
	detector := detect.NewDetector()

	installService := &services.InstallService{
		ConfigProvider: cfgLoader,
		Scanner:        scanner,
		Codec:          codec,
		Backups:        backups,
		Runner:         runner,
		Logger:         log,
	}
	rollbackService := &services.RollbackService{
		ConfigProvider: cfgLoader,
		Scanner:        scanner,
		Codec:          codec,
		Backups:        backups,
		Logger:         log,
	}
	verifyService := &services.VerifyService{
		ConfigProvider: cfgLoader,
		Scanner:        scanner,
		Runner:         runner,
		Logger:         log,
	}

	return &Container{
		ConfigProvider:  cfgLoader,
		Scanner:         scanner,
		Codec:           codec,
		Backups:         backups,
		Detector:        detector,
		Runner:          runner,
		Logger:          log,
		InstallService:  installService,
		RollbackService: rollbackService,
		VerifyService:   verifyService,
	}, nil
}
