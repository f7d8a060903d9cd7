// Package console provides the interactive text menu for managing products.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	perrors "github.com/abgdnv/inventory/internal/product/errors"
	"github.com/abgdnv/inventory/internal/product/service"
	"github.com/go-playground/validator/v10"
)

// ErrInputClosed is returned by Run when the input stream ends or cannot be read.
var ErrInputClosed = errors.New("input stream closed")

const clearScreen = "\x1B[2J\x1B[1;1H"

// Options controls terminal behaviour of the console.
type Options struct {
	// ClearScreen emits an ANSI clear sequence before each menu and form.
	ClearScreen bool
	// Pause waits for Enter after each action so its outcome stays on screen.
	Pause bool
}

// Console runs the menu loop over a line-oriented reader and writer.
type Console struct {
	service  service.ProductService
	validate *validator.Validate
	in       *bufio.Reader
	out      io.Writer
	opts     Options
	logger   *slog.Logger
}

// New creates a Console reading commands from in and writing to out.
func New(svc service.ProductService, in io.Reader, out io.Writer, opts Options, logger *slog.Logger) *Console {
	return &Console{
		service:  svc,
		validate: service.NewValidator(),
		in:       bufio.NewReader(in),
		out:      out,
		opts:     opts,
		logger:   logger.With("component", "console"),
	}
}

// Run shows the menu until the user exits. It returns nil on exit, ctx.Err() when the context
// is cancelled, and an error wrapping ErrInputClosed when the input can no longer be read.
func (c *Console) Run(ctx context.Context) error {
	c.logger.InfoContext(ctx, "Console session started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.clear()
		c.menu()

		line, err := c.readLine(ctx)
		if err != nil {
			return err
		}
		option := parseOption(line)
		c.logger.DebugContext(ctx, "Menu option selected", "option", option)

		switch option {
		case 1:
			err = c.listAll(ctx)
		case 2:
			err = c.search(ctx)
		case 3:
			err = c.create(ctx)
		case 4:
			err = c.update(ctx)
		case 5:
			err = c.delete(ctx)
		case 6:
			c.logger.InfoContext(ctx, "Console session finished")
			return nil
		default:
			c.writeln("Invalid input.")
			err = c.pause(ctx)
		}
		if err != nil {
			return err
		}
	}
}

// parseOption returns the menu number in line, or 0 if it is not a number.
func parseOption(line string) int {
	option, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0
	}
	return option
}

func (c *Console) menu() {
	c.writeln("========== INVENTORY =========")
	c.writeln("1. See all")
	c.writeln("2. Search")
	c.writeln("3. Create")
	c.writeln("4. Update")
	c.writeln("5. Delete")
	c.writeln("6. Exit")
	c.write("--> ")
}

func (c *Console) listAll(ctx context.Context) error {
	c.clear()
	products, err := c.service.FindAll(ctx)
	switch {
	case errors.Is(err, perrors.ErrNoProducts):
		c.writeln("No products")
	case err != nil:
		c.reportError(ctx, "list products", err)
	default:
		for i, p := range products {
			c.writeln(formatRow(i+1, p))
		}
	}
	return c.pause(ctx)
}

func (c *Console) search(ctx context.Context) error {
	c.clear()
	query, err := c.prompt(ctx, "Search by name: ")
	if err != nil {
		return err
	}
	found, err := c.service.SearchByName(ctx, query)
	switch {
	case errors.Is(err, perrors.ErrNoProducts):
		c.writeln("No products")
	case errors.Is(err, perrors.ErrProductNotFound):
		c.printf("'%s' not found.\n", query)
	case err != nil:
		c.reportError(ctx, "search products", err)
	default:
		c.writeln(formatMatch(*found))
	}
	return c.pause(ctx)
}

func (c *Console) create(ctx context.Context) error {
	c.clear()
	c.writeln("New product")
	fields, err := c.readProductFields(ctx)
	if err != nil {
		return err
	}
	created, err := c.service.Create(ctx, service.ProductCreateDto(fields))
	if err != nil {
		c.reportError(ctx, "create product", err)
		return c.pause(ctx)
	}
	c.printf("Product created with ID %s.\n", created.ID)
	return c.pause(ctx)
}

func (c *Console) update(ctx context.Context) error {
	id, err := c.readID(ctx)
	if err != nil {
		return err
	}
	c.clear()
	c.writeln("Update product")
	fields, err := c.readProductFields(ctx)
	if err != nil {
		return err
	}
	updated, err := c.service.Update(ctx, id, service.ProductUpdateDto(fields))
	switch {
	case errors.Is(err, perrors.ErrProductNotFound):
		c.writeln("Product not found.")
	case err != nil:
		c.reportError(ctx, "update product", err)
	default:
		c.printf("Product with ID %s updated.\n", updated.ID)
	}
	return c.pause(ctx)
}

func (c *Console) delete(ctx context.Context) error {
	id, err := c.readID(ctx)
	if err != nil {
		return err
	}
	err = c.service.DeleteByID(ctx, id)
	switch {
	case errors.Is(err, perrors.ErrProductNotFound):
		c.writeln("Product not found.")
	case err != nil:
		c.reportError(ctx, "delete product", err)
	default:
		c.printf("Product with ID %s deleted.\n", id)
	}
	return c.pause(ctx)
}

func (c *Console) pause(ctx context.Context) error {
	if !c.opts.Pause {
		return nil
	}
	_, err := c.prompt(ctx, "Enter to continue...\n")
	return err
}

// reportError shows an unexpected service failure without ending the session.
func (c *Console) reportError(ctx context.Context, action string, err error) {
	c.logger.ErrorContext(ctx, "Operation failed", "action", action, "error", err)
	c.printf("Failed to %s: %v\n", action, err)
}

func (c *Console) clear() {
	if c.opts.ClearScreen {
		c.write(clearScreen)
	}
}

func (c *Console) write(s string) {
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) writeln(s string) {
	_, _ = io.WriteString(c.out, s+"\n")
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
