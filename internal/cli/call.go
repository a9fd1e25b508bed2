package cli

import (
	"encoding/json"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lexfrei/go-meraki/internal/audit"
)

func (a *app) callCmd() *cobra.Command {
	var (
		params      map[string]string
		queryPairs  []string
		bodySource  string
		checkFields bool
	)

	cmd := &cobra.Command{
		Use:   "call <operationId>",
		Short: "Invoke any catalogued operation by its ID",
		Long: `Invoke any catalogued operation by its ID.

Path parameters are given with -p name=value, query parameters with
--query name=value (repeatable). The body is read from a file, or from
stdin with --body -, and must match the operation's request model.`,
		Example: `  merakictl call getOrganizationAdmins -p organizationId=2930418
  merakictl call updateDeviceSwitchPort -p serial=Q234-ABCD-5678 -p number=3 --body port.json
  merakictl call getNetworkClients -p networkId=N_1 --query timespan=3600 --query perPage=10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseQuery(queryPairs)
			if err != nil {
				return err
			}

			body, err := readBody(cmd.InOrStdin(), bodySource)
			if err != nil {
				return err
			}

			client, err := a.client(nil)
			if err != nil {
				return err
			}

			raw, err := client.Invoke(cmd.Context(), args[0], params, query, body)
			if err != nil {
				return err //nolint:wrapcheck // Dashboard errors are self-describing
			}

			if checkFields && len(raw) > 0 {
				unknown, err := audit.UnknownResponseFields(args[0], raw)
				if err != nil {
					return errors.Wrap(err, "failed to check response fields")
				}
				for _, field := range unknown {
					a.logger.Warn("response field not in model", zap.String("operation", args[0]), zap.String("field", field))
				}
			}

			return renderRaw(a.out, a.cfg.Output, raw)
		},
	}

	cmd.Flags().StringToStringVarP(&params, "param", "p", nil, "path parameter name=value")
	cmd.Flags().StringArrayVar(&queryPairs, "query", nil, "query parameter name=value (repeatable)")
	cmd.Flags().StringVar(&bodySource, "body", "", "request body file, or - for stdin")
	cmd.Flags().BoolVar(&checkFields, "check-fields", false, "warn about response fields the model does not declare")

	return cmd
}

func parseQuery(pairs []string) (url.Values, error) {
	if len(pairs) == 0 {
		return nil, nil //nolint:nilnil // No query parameters
	}

	query := url.Values{}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, errors.Newf("invalid query parameter %q (expected name=value)", pair)
		}
		query.Add(name, value)
	}

	return query, nil
}

func readBody(stdin io.Reader, source string) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)

	switch source {
	case "":
		return nil, nil //nolint:nilnil // No body
	case "-":
		data, err = io.ReadAll(stdin)
	default:
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read body")
	}

	if !json.Valid(data) {
		return nil, errors.New("body is not valid JSON")
	}

	return json.RawMessage(data), nil
}
