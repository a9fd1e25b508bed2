package cli

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/lexfrei/go-meraki/api/dashboard"
	"github.com/lexfrei/go-meraki/internal/audit"
)

func (a *app) auditCmd() *cobra.Command {
	var (
		specPath     string
		uncatalogued bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Compare the operation catalog with an OpenAPI or Swagger document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(specPath)
			if err != nil {
				return errors.Wrap(err, "failed to read document")
			}

			doc, err := audit.Parse(cmd.Context(), data)
			if err != nil {
				return err //nolint:wrapcheck // Already wrapped
			}

			endpoints := dashboard.Endpoints()
			findings := audit.Check(doc, endpoints)
			if uncatalogued {
				findings = append(findings, audit.Uncatalogued(doc, endpoints)...)
			}

			if err := render(a.out, a.cfg.Output, findings, func() *table {
				t := &table{header: []string{"KIND", "METHOD", "PATH", "OPERATION", "DETAIL"}}
				for _, f := range findings {
					t.add(f.Kind, f.Method, f.Path, f.OperationID, f.Detail)
				}
				return t
			}); err != nil {
				return err
			}

			drift := 0
			for _, f := range findings {
				if f.Kind != audit.UncataloguedOperation {
					drift++
				}
			}
			if drift > 0 {
				return errors.Newf("%d catalogued operation(s) differ from the document", drift)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "OpenAPI 3 or Swagger 2.0 document, JSON or YAML (required)")
	cmd.Flags().BoolVar(&uncatalogued, "uncatalogued", false, "also list document operations missing from the catalog")
	_ = cmd.MarkFlagRequired("spec")

	return cmd
}
