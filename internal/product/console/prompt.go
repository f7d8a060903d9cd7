package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/abgdnv/inventory/internal/product/store"
	"github.com/google/uuid"
)

// productFields is the validated input shared by create and update forms.
type productFields struct {
	Name  string
	Brand store.Brand
	Price float64
	Stock int32
}

// readLine returns the next input line without its trailing newline.
func (c *Console) readLine(ctx context.Context) (string, error) {
	line, err := c.in.ReadString('\n')
	if err == nil || (errors.Is(err, io.EOF) && line != "") {
		return strings.TrimRight(line, "\r\n"), nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if errors.Is(err, io.EOF) {
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
}

// prompt writes label and returns the trimmed answer.
func (c *Console) prompt(ctx context.Context, label string) (string, error) {
	c.write(label)
	line, err := c.readLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readProductFields asks for every product field, reprompting until each one is valid.
func (c *Console) readProductFields(ctx context.Context) (productFields, error) {
	var f productFields
	var err error
	if f.Name, err = c.readName(ctx); err != nil {
		return f, err
	}
	if f.Brand, err = c.readBrand(ctx); err != nil {
		return f, err
	}
	if f.Price, err = c.readPrice(ctx); err != nil {
		return f, err
	}
	if f.Stock, err = c.readStock(ctx); err != nil {
		return f, err
	}
	return f, nil
}

func (c *Console) readName(ctx context.Context) (string, error) {
	for {
		name, err := c.prompt(ctx, "Name: ")
		if err != nil {
			return "", err
		}
		if c.validate.Var(name, "required,max=100") == nil {
			return name, nil
		}
		c.writeln("Invalid name! Enter between 1 and 100 characters.")
	}
}

func (c *Console) readBrand(ctx context.Context) (store.Brand, error) {
	for {
		input, err := c.prompt(ctx, "Brand ("+brandChoices()+"): ")
		if err != nil {
			return 0, err
		}
		if brand, err := store.ParseBrand(input); err == nil {
			return brand, nil
		}
		c.writeln("Invalid brand! Please enter " + brandChoices() + ".")
	}
}

// brandChoices lists the known brands as "A, B or C".
func brandChoices() string {
	brands := store.Brands()
	names := make([]string, len(brands))
	for i, b := range brands {
		names[i] = b.String()
	}
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

func (c *Console) readPrice(ctx context.Context) (float64, error) {
	for {
		input, err := c.prompt(ctx, "Price: ")
		if err != nil {
			return 0, err
		}
		price, err := strconv.ParseFloat(input, 64)
		if err == nil && !math.IsInf(price, 0) && c.validate.Var(price, "gt=0") == nil {
			return price, nil
		}
		c.writeln("Invalid price! Enter a positive number.")
	}
}

func (c *Console) readStock(ctx context.Context) (int32, error) {
	for {
		input, err := c.prompt(ctx, "Stock: ")
		if err != nil {
			return 0, err
		}
		stock, err := strconv.ParseInt(input, 10, 32)
		if err == nil && c.validate.Var(stock, "gte=0") == nil {
			return int32(stock), nil
		}
		c.writeln("Invalid stock! Enter a positive whole number.")
	}
}

func (c *Console) readID(ctx context.Context) (uuid.UUID, error) {
	for {
		input, err := c.prompt(ctx, "Product ID: ")
		if err != nil {
			return uuid.Nil, err
		}
		if id, err := uuid.Parse(input); err == nil {
			return id, nil
		}
		c.writeln("Invalid ID! Please enter a valid UUID.")
	}
}
