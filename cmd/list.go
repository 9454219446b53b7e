package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/pomsync/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var listFormat string

//nolint:gochecknoglobals // required by cobra CLI pattern
var listCmd = &cobra.Command{
	Use:   "list <pom>",
	Short: "List every versioned declaration in a POM",
	Long: `List the project identity, dependencies, managed dependencies, plugins and
managed plugins declared in a POM, with their declared and effective
versions. Versions held by properties or management sections are resolved
for display only; nothing is modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	listCmd.Flags().StringVar(&listFormat, "output", "table", "Output format: table or json")
	rootCmd.AddCommand(listCmd)
}

type declarationInfo struct {
	Scope      domain.Scope `json:"scope"`
	GroupID    string       `json:"groupId,omitempty"`
	ArtifactID string       `json:"artifactId"`
	Declared   string       `json:"declared,omitempty"`
	Effective  string       `json:"effective,omitempty"`
	Source     string       `json:"source"`
	Plugin     string       `json:"plugin,omitempty"` // Set for plugin-nested dependencies
}

func runList(_ *cobra.Command, args []string) error {
	descriptor, err := injectDescriptorRepository().Load(args[0])
	if err != nil {
		return err
	}

	rows := collectDeclarations(descriptor)

	switch listFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	case "table":
		printTable(rows)
		return nil
	default:
		return fmt.Errorf("invalid output format %q (expected table or json)", listFormat)
	}
}

// collectDeclarations flattens the catalog plus plugin-nested dependencies
// into display rows, resolving each effective version through the
// properties map and the matching management section.
func collectDeclarations(descriptor *domain.Descriptor) []declarationInfo {
	managedDeps := descriptor.Catalog.ManagedVersions(domain.ScopeDependencyManagement)
	managedPlugins := descriptor.Catalog.ManagedVersions(domain.ScopePluginManagement)

	rows := make([]declarationInfo, 0, len(descriptor.Catalog)+len(descriptor.PluginDeps))
	for _, node := range descriptor.Catalog {
		managed := ""
		switch node.Coordinate.Scope {
		case domain.ScopeDependency:
			managed = managedDeps[node.Coordinate.ArtifactID]
		case domain.ScopePlugin:
			managed = managedPlugins[node.Coordinate.ArtifactID]
		}

		effective, source := domain.ResolveVersion(node.Version, managed, descriptor.Properties)
		rows = append(rows, declarationInfo{
			Scope:      node.Coordinate.Scope,
			GroupID:    node.Coordinate.GroupID,
			ArtifactID: node.Coordinate.ArtifactID,
			Declared:   node.Version,
			Effective:  effective,
			Source:     source,
		})
	}

	for _, dep := range descriptor.PluginDeps {
		effective, source := domain.ResolveVersion(dep.Version, "", descriptor.Properties)
		rows = append(rows, declarationInfo{
			Scope:      domain.ScopeDependency,
			GroupID:    dep.GroupID,
			ArtifactID: dep.ArtifactID,
			Declared:   dep.Version,
			Effective:  effective,
			Source:     source,
			Plugin:     dep.Plugin,
		})
	}

	return rows
}

func printTable(rows []declarationInfo) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCOPE\tCOORDINATE\tDECLARED\tEFFECTIVE\tSOURCE")

	for _, row := range rows {
		coordinate := row.ArtifactID
		if row.GroupID != "" {
			coordinate = row.GroupID + ":" + row.ArtifactID
		}
		if row.Plugin != "" {
			coordinate += " (in " + row.Plugin + ")"
		}

		declared := row.Declared
		if declared == "" {
			declared = "-"
		}
		effective := row.Effective
		if effective == "" {
			effective = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.Scope, coordinate, declared, effective, row.Source)
	}

	_ = w.Flush()
}
