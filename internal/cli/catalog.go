package cli

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/lexfrei/go-meraki/api/dashboard"
	"github.com/lexfrei/go-meraki/internal/buildinfo"
)

func (a *app) endpointsCmd() *cobra.Command {
	var controller string

	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List the catalogued Dashboard API operations",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			var endpoints []dashboard.Endpoint
			for _, ep := range dashboard.Endpoints() {
				if controller == "" || strings.EqualFold(ep.Controller, controller) {
					endpoints = append(endpoints, ep)
				}
			}

			return render(a.out, a.cfg.Output, endpoints, func() *table {
				t := &table{header: []string{"CONTROLLER", "OPERATION", "METHOD", "PATH", "BODY"}}
				for _, ep := range endpoints {
					body := string(ep.Body)
					if ep.BodyRequired {
						body += " (required)"
					}
					t.add(ep.Controller, ep.OperationID, ep.Method, ep.Path, body)
				}
				return t
			})
		},
	}

	cmd.Flags().StringVar(&controller, "controller", "", "only operations of this controller (e.g. Admins)")

	return cmd
}

func (a *app) modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models [kind]",
		Short: "List model kinds, or the wire fields of one kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				kinds := dashboard.Kinds()
				return render(a.out, a.cfg.Output, kinds, func() *table {
					t := &table{header: []string{"KIND"}}
					for _, kind := range kinds {
						t.add(kind)
					}
					return t
				})
			}

			mappings, err := dashboard.FieldMappings(dashboard.ModelKind(args[0]))
			if err != nil {
				return errors.Wrap(err, "unknown model")
			}

			return render(a.out, a.cfg.Output, mappings, func() *table {
				t := &table{header: []string{"FIELD", "WIRE NAME", "TYPE", "ARRAY"}}
				for _, m := range mappings {
					t.add(m.Name, m.WireName, m.Type, m.Array)
				}
				return t
			})
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the merakictl version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintln(a.out, buildinfo.String())
			return errors.Wrap(err, "failed to write version")
		},
	}
}
