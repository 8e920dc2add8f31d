// cmd/gridctl/main.go
//
// Entry point for the gridctl CLI: a toolkit for operating a remote
// compute-orchestration platform. The compatibility commands wired here
// answer one question: can these worker pools run this task group?

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kingrea/gridctl/internal/config"
	"github.com/kingrea/gridctl/internal/logbook"
	"github.com/kingrea/gridctl/internal/platform"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gridctl",
		Short:         "Operate a remote compute-orchestration platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCompareCmd(), newVerifyCmd())
	return root
}

// toolkit bundles the collaborators every command needs.
type toolkit struct {
	cfg    *config.Config
	log    *logbook.Logbook
	client platform.Client
}

func newToolkit() (*toolkit, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logbook.New(filepath.Join(cfg.LogsDir(), "gridctl.log"))
	if err != nil {
		return nil, err
	}
	key, secret := cfg.Credentials()
	return &toolkit{
		cfg:    cfg,
		log:    log,
		client: platform.NewRESTClient(cfg.APIURL(), key, secret),
	}, nil
}
