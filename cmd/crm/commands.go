package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/qawafel/crm-backend/internal/client"
	"github.com/qawafel/crm-backend/internal/messaging"
	"github.com/qawafel/crm-backend/pkg/auth"
	"github.com/qawafel/crm-backend/pkg/config"
	"github.com/qawafel/crm-backend/pkg/enums"
	"github.com/qawafel/crm-backend/pkg/logger"
)

const usage = `usage: crm [--base-url URL] [--token JWT] [--timeout D] <command> [args]

commands:
  snapshot                      print the full CRM snapshot
  mutate <ACTION> <json>        send one mutation, e.g. mutate DELETE_LEAD '{"id":3}'
  intake-link <leadId>          print the public form link for a lead, issuing a token if needed
  stats                         print dashboard statistics
  message --to T --channel C --goal G [--extra X]
                                draft an outreach message
  token [--operator NAME]       mint an operator token with the local JWT secret`

var errUsage = errors.New(usage)

type cli struct {
	cfg     *config.Config
	baseURL string
	token   string
	timeout time.Duration
	logg    *logger.Logger
	out     io.Writer
}

type command func(ctx context.Context, c *cli, args []string) error

var commands = map[string]command{
	"snapshot":    cmdSnapshot,
	"mutate":      cmdMutate,
	"intake-link": cmdIntakeLink,
	"stats":       cmdStats,
	"message":     cmdMessage,
	"token":       cmdToken,
}

func parseGlobal(cfg *config.Config, args []string) (*cli, []string, error) {
	fs := flag.NewFlagSet("crm", flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.Usage = func() {}
	c := &cli{cfg: cfg}
	fs.StringVar(&c.baseURL, "base-url", cfg.Client.BaseURL, "CRM API base URL")
	fs.StringVar(&c.token, "token", cfg.Client.Token, "operator bearer token")
	fs.DurationVar(&c.timeout, "timeout", cfg.Client.Timeout, "request timeout")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, errUsage
		}
		return nil, nil, err
	}
	return c, fs.Args(), nil
}

func (c *cli) httpClient() (*client.HTTPClient, error) {
	return client.NewHTTPClient(c.baseURL, client.WithBearerToken(c.token), client.WithTimeout(c.timeout))
}

func (c *cli) store(ctx context.Context) (*client.Store, error) {
	api, err := c.httpClient()
	if err != nil {
		return nil, err
	}
	store, err := client.NewStore(client.StoreParams{
		API:           api,
		Logger:        c.logg,
		PublicBaseURL: c.cfg.App.PublicBaseURL,
	})
	if err != nil {
		return nil, err
	}
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func cmdSnapshot(ctx context.Context, c *cli, _ []string) error {
	api, err := c.httpClient()
	if err != nil {
		return err
	}
	snap, err := api.Init(ctx)
	if err != nil {
		return err
	}
	return c.printJSON(snap)
}

func cmdMutate(ctx context.Context, c *cli, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	action := enums.MutationAction(strings.ToUpper(strings.TrimSpace(args[0])))
	payload := json.RawMessage(args[1])
	if !json.Valid(payload) {
		return fmt.Errorf("payload is not valid JSON")
	}
	store, err := c.store(ctx)
	if err != nil {
		return err
	}
	if err := store.Mutate(ctx, action, payload); err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.out, "%s ok\n", action)
	return err
}

func cmdIntakeLink(ctx context.Context, c *cli, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	leadID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid lead id %q", args[0])
	}
	store, err := c.store(ctx)
	if err != nil {
		return err
	}
	link, err := store.IntakeLink(ctx, leadID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, link)
	return err
}

func cmdStats(ctx context.Context, c *cli, _ []string) error {
	api, err := c.httpClient()
	if err != nil {
		return err
	}
	stats, err := api.Dashboard(ctx)
	if err != nil {
		return err
	}
	return c.printJSON(stats)
}

func cmdMessage(ctx context.Context, c *cli, args []string) error {
	fs := flag.NewFlagSet("message", flag.ContinueOnError)
	var req messaging.Request
	var to, channel string
	fs.StringVar(&to, "to", string(enums.UserTypeRetailer), "recipient type: Retailer|Vendor")
	fs.StringVar(&channel, "channel", string(enums.MessageChannelEmail), "Email|SMS|Push|WhatsApp")
	fs.StringVar(&req.Goal, "goal", "", "what the message should achieve")
	fs.StringVar(&req.ExtraInstructions, "extra", "", "additional instructions")
	if err := fs.Parse(args); err != nil {
		return err
	}
	req.RecipientType = enums.UserType(to)
	req.Channel = enums.MessageChannel(channel)

	api, err := c.httpClient()
	if err != nil {
		return err
	}
	msg, err := api.GenerateMessage(ctx, req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, msg)
	return err
}

func cmdToken(_ context.Context, c *cli, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	operator := fs.String("operator", "operator", "operator name carried in the token")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !c.cfg.JWT.Enabled() {
		return fmt.Errorf("%s is not set", config.EnvJWTSecret)
	}
	token, err := auth.MintOperatorToken(c.cfg.JWT, time.Now(), auth.OperatorTokenPayload{Operator: *operator})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, token)
	return err
}
