// Command plancheck audits the embedded numbering plan against the
// libphonenumber port. It is a maintainer tool, not part of the serving
// path: the engine never imports the upstream library.
//
// Checks per region:
//   - the plan's country calling code must agree with upstream;
//   - every directory example number must parse upstream; examples the
//     upstream metadata considers invalid are reported as warnings, since
//     the embedded plan is deliberately simplified.
package main

import (
	"context"
	"fmt"
	"os"

	"phonecheck_backend/internal/numbering/plan"
	"phonecheck_backend/internal/numbering/service"
	"phonecheck_backend/platform/config"
	"phonecheck_backend/platform/logger"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	log := logger.New(cfg.Env)

	store, err := plan.Load(cfg.GetPlanDataPath())
	if err != nil {
		log.Error("failed to load numbering plan", "error", err)
		os.Exit(1)
	}

	dir := service.NewDirectory()

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(8)

	for _, region := range store.Regions() {
		g.Go(func() error {
			return checkRegion(log, dir, region)
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("numbering plan check failed", "error", err)
		os.Exit(1)
	}
	log.Info("numbering plan check passed", "regions", len(store.Regions()))
}

func checkRegion(log *logger.Logger, dir *service.Directory, region *plan.Region) error {
	upstream := phonenumbers.GetCountryCodeForRegion(region.Code)
	if upstream == 0 {
		return fmt.Errorf("region %s: unknown to upstream metadata", region.Code)
	}
	if upstream != region.CallingCode {
		return fmt.Errorf("region %s: calling code %d, upstream says %d", region.Code, region.CallingCode, upstream)
	}

	for _, example := range dir.Examples(region.Code) {
		num, err := phonenumbers.Parse(example, region.Code)
		if err != nil {
			return fmt.Errorf("region %s: example %q does not parse upstream: %w", region.Code, example, err)
		}
		if !phonenumbers.IsValidNumber(num) {
			log.Warn("example number not valid upstream",
				"region", region.Code,
				"example", example,
				"e164", phonenumbers.Format(num, phonenumbers.E164),
			)
		}
	}
	return nil
}
