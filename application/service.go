package application

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pomsync/domain"
)

// SyncService orchestrates one reconciliation pass:
// load registries -> load descriptor -> reconcile -> write.
type SyncService struct {
	descriptors domain.DescriptorRepository
	registries  domain.RegistryRepository
}

// NewSyncService creates a new service with the given repositories.
func NewSyncService(
	descriptors domain.DescriptorRepository,
	registries domain.RegistryRepository,
) *SyncService {
	return &SyncService{
		descriptors: descriptors,
		registries:  registries,
	}
}

// SyncOptions holds runtime options for a single run.
type SyncOptions struct {
	DescriptorPath string
	AppRegistry    string
	DepRegistry    string
	OutputPath     string // If empty, the descriptor is updated in place
	Scopes         domain.ScopeSet
	DryRun         bool
	Verbose        bool
}

// Run executes one full pass over one descriptor and returns the report.
// Registries are loaded first so a malformed mapping fails the run before
// any reconciliation work is done; nothing is written unless the pass
// completes.
func (s *SyncService) Run(_ context.Context, opts SyncOptions) (domain.Report, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	registry, err := s.registries.Load(opts.AppRegistry, opts.DepRegistry)
	if err != nil {
		return nil, err
	}
	logger.Debugf(
		"Loaded registries: %d application entries, %d dependency entries",
		len(registry.Applications), len(registry.Dependencies),
	)

	descriptor, err := s.descriptors.Load(opts.DescriptorPath)
	if err != nil {
		return nil, err
	}
	logger.Debugf(
		"Parsed %s: %d declarations, %d properties",
		opts.DescriptorPath, len(descriptor.Catalog), len(descriptor.Properties),
	)

	scopes := opts.Scopes
	if scopes == nil {
		scopes = domain.DefaultScopes()
	}

	edits, report := domain.Reconcile(descriptor.Catalog, registry, scopes)

	for _, entry := range report {
		logEntry(entry)
	}

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would apply %d edits to %s", len(edits), s.target(opts))
		return report, nil
	}

	if writeErr := s.commit(descriptor, edits, opts); writeErr != nil {
		return nil, writeErr
	}

	logger.Infof(
		"Reconciled %s: %d updated, %d unchanged, %d without target, %d indirect",
		opts.DescriptorPath,
		report.Count(domain.ActionUpdated),
		report.Count(domain.ActionUnchanged),
		report.Count(domain.ActionSkippedNoMatch),
		report.Count(domain.ActionSkippedIndirect),
	)
	return report, nil
}

// commit writes the updated descriptor. An in-place run with zero edits
// leaves the file completely alone; an explicit output path is always
// written, even when the content is unchanged.
func (s *SyncService) commit(
	descriptor *domain.Descriptor,
	edits domain.EditSet,
	opts SyncOptions,
) error {
	if opts.OutputPath == "" && len(edits) == 0 {
		logger.Debugf("%s already up to date, skipping write", opts.DescriptorPath)
		return nil
	}
	return s.descriptors.Save(descriptor, edits, s.target(opts))
}

func (s *SyncService) target(opts SyncOptions) string {
	if opts.OutputPath != "" {
		return opts.OutputPath
	}
	return opts.DescriptorPath
}

func logEntry(entry domain.ReportEntry) {
	coordinate := entry.ArtifactID
	if entry.GroupID != "" {
		coordinate = entry.GroupID + ":" + entry.ArtifactID
	}

	switch entry.Action {
	case domain.ActionUpdated:
		old := entry.OldVersion
		if old == "" {
			old = "(none)"
		}
		logger.Infof("[%s] %s: %s -> %s", entry.Scope, coordinate, old, entry.NewVersion)
	case domain.ActionSkippedIndirect:
		logger.Debugf(
			"[%s] %s: version held by property %q, skipping",
			entry.Scope, coordinate, entry.Property,
		)
	case domain.ActionSkippedNoMatch:
		logger.Debugf("[%s] %s: no target version in registry", entry.Scope, coordinate)
	case domain.ActionUnchanged:
		logger.Debugf("[%s] %s: already at %s", entry.Scope, coordinate, entry.NewVersion)
	}
}
