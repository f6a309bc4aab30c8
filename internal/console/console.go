// Package console drives the interactive selection/dispatch loop. One
// iteration shows the session defaults and the menu, reads a selection,
// collects the request inputs, sends the request and renders the response.
// Everything that can go wrong mid-iteration is printed and returns the
// operator to the menu; only the end of the input stream stops the loop.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/zab-bid-org/zabcli/internal/catalog"
	"github.com/zab-bid-org/zabcli/internal/client"
	"github.com/zab-bid-org/zabcli/internal/payload"
	"github.com/zab-bid-org/zabcli/internal/prompt"
	"github.com/zab-bid-org/zabcli/internal/render"
	"github.com/zab-bid-org/zabcli/internal/session"
)

var styleMenuHeader = lipgloss.NewStyle().Bold(true)

// Console binds the pieces of one interactive run together.
type Console struct {
	client   *client.Client
	catalog  *catalog.Catalog
	prompter *prompt.Prompter
	defaults *session.Defaults
	out      io.Writer
	log      *logrus.Logger
}

// New builds a Console. A nil log falls back to a silent logger.
func New(cli *client.Client, cat *catalog.Catalog, p *prompt.Prompter, defaults *session.Defaults, out io.Writer, log *logrus.Logger) *Console {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Console{
		client:   cli,
		catalog:  cat,
		prompter: p,
		defaults: defaults,
		out:      out,
		log:      log,
	}
}

// Run loops until the input stream ends or ctx is canceled. EOF is a clean
// exit, not an error.
func (c *Console) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !c.defaults.Empty() {
			render.JSON(c.out, "Current session defaults:", c.defaults.Snapshot())
		}

		ep, err := c.choose()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out, "\nExiting.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "\nSelected: %s\n", ep.Name)

		err = c.dispatch(ctx, ep)
		switch {
		case err == nil:
			fmt.Fprintln(c.out, "\n---")
		case errors.Is(err, io.EOF):
			fmt.Fprintln(c.out, "\nExiting.")
			return nil
		case errors.Is(err, payload.ErrNotImplemented):
			fmt.Fprintln(c.out, "\nNot Implemented:")
			fmt.Fprintln(c.out, err.Error())
			c.log.WithField("endpoint", ep.ID).Warn("unimplemented endpoint selected")
		default:
			fmt.Fprintln(c.out, "\nRequest failed:")
			fmt.Fprintln(c.out, err.Error())
			c.log.WithField("endpoint", ep.ID).WithError(err).Error("request failed")
		}
	}
}

func (c *Console) choose() (catalog.Endpoint, error) {
	fmt.Fprintln(c.out, styleMenuHeader.Render("\nAvailable endpoints:"))
	for _, ep := range c.catalog.List() {
		fmt.Fprintf(c.out, "%s. %s\n", ep.Key, ep.Name)
	}
	for {
		key, err := c.prompter.Text("Select endpoint", "")
		if err != nil {
			return catalog.Endpoint{}, err
		}
		if ep, ok := c.catalog.Resolve(key); ok {
			return ep, nil
		}
		fmt.Fprintln(c.out, "Invalid selection.")
	}
}

func (c *Console) dispatch(ctx context.Context, ep catalog.Endpoint) error {
	if ep.Method == http.MethodPost {
		body, err := payload.Body(ep, c.prompter, c.defaults)
		if err != nil {
			return err
		}
		render.JSON(c.out, "Request JSON:", body)
		status, respBody, err := c.client.Post(ctx, ep.Path, body)
		if err != nil {
			return err
		}
		render.Response(c.out, status, respBody)
		return nil
	}

	params, err := payload.Query(ep, c.prompter, c.defaults)
	if err != nil {
		return err
	}
	if len(params.Query) > 0 {
		render.JSON(c.out, "Query params:", params.Query)
	}
	status, respBody, err := c.client.Get(ctx, ep.Path, params)
	if err != nil {
		return err
	}
	render.Response(c.out, status, respBody)
	return nil
}
