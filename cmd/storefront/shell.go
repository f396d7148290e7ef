package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/screens"
)

const help = `commands:
  list                      show the current screen
  search <term>             filter products by title (home)
  category <name>           all, electronics, jewelery, men's clothing, women's clothing (home)
  sort price|rating         order the product list (home)
  refresh                   reload products (home)
  view <n>                  open product n (home, related list, cart line)
  cart                      open the cart (home)
  + / -                     change quantity (product)
  add | wish | share        product actions
  checkout                  proceed to checkout (cart)
  name <text>               checkout name
  address <text>            checkout address
  place                     place the order (checkout)
  home                      back to home (thank you)
  back                      previous screen
  quit                      exit`

var errQuit = errors.New("quit")

// shell renders the current screen as text and maps typed commands to actions.
// It is also the Alerter and Sharer of the screens.
type shell struct {
	app *screens.App
	log *slog.Logger

	mu  sync.Mutex
	out io.Writer
}

func newShell(out io.Writer, log *slog.Logger) *shell {
	return &shell{out: out, log: log}
}

func (s *shell) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

func (s *shell) Alert(a screens.Alert) {
	s.printf("[%s] %s\n", a.Title, a.Message)
}

func (s *shell) Share(_ context.Context, message string) error {
	s.printf("--- share ---\n%s\n-------------\n", message)
	return nil
}

func (s *shell) Run(ctx context.Context, in io.Reader) error {
	if err := s.app.Start(ctx); err != nil {
		s.log.Warn("start", slog.Any("err", err))
	}
	s.render()

	sc := bufio.NewScanner(in)
	for {
		s.printf("> ")
		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		err := s.exec(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			s.printf("! %v\n", err)
		}
		if err := s.app.Sync(ctx); err != nil && !errors.Is(err, screens.ErrSuperseded) {
			s.log.Warn("screen load", slog.Any("err", err))
		}
		s.render()
	}
}

func (s *shell) exec(ctx context.Context, line string) error {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "quit", "exit":
		return errQuit
	case "help":
		s.printf("%s\n", help)
		return nil
	case "list":
		return nil
	case "back":
		_, err := s.app.Navigator().Back()
		return err
	}

	switch cur := s.app.Current().(type) {
	case *screens.Home:
		return s.home(ctx, cur, cmd, arg)
	case *screens.Details:
		return s.details(ctx, cur, cmd, arg)
	case *screens.Cart:
		return s.cart(cur, cmd, arg)
	case *screens.Checkout:
		return s.checkout(ctx, cur, cmd, arg)
	case *screens.ThankYou:
		if cmd == "home" {
			return cur.GoHome()
		}
	}
	return fmt.Errorf("unknown command %q here, try help", cmd)
}

func (s *shell) home(ctx context.Context, h *screens.Home, cmd, arg string) error {
	switch cmd {
	case "search":
		h.SetSearch(arg)
		return nil
	case "category":
		if arg == "" {
			arg = catalog.CategoryAll
		}
		return h.SelectCategory(ctx, arg)
	case "sort":
		opt, err := catalogapp.ParseSortOption(arg)
		if err != nil {
			return err
		}
		h.SetSort(opt)
		return nil
	case "refresh":
		return h.Refresh(ctx)
	case "view":
		p, err := pick(h.Products(), arg)
		if err != nil {
			return err
		}
		return h.OpenProduct(p)
	case "cart":
		return h.OpenCart()
	}
	return fmt.Errorf("unknown command %q here, try help", cmd)
}

func (s *shell) details(ctx context.Context, v *screens.Details, cmd, arg string) error {
	switch cmd {
	case "+":
		v.Increment()
		return nil
	case "-":
		v.Decrement()
		return nil
	case "add":
		return v.AddToCart(ctx)
	case "wish":
		return v.AddToWishlist(ctx)
	case "share":
		return v.Share(ctx)
	case "view":
		p, err := pick(v.Related(), arg)
		if err != nil {
			return err
		}
		return v.OpenRelated(p)
	}
	return fmt.Errorf("unknown command %q here, try help", cmd)
}

func (s *shell) cart(c *screens.Cart, cmd, arg string) error {
	switch cmd {
	case "view":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("view needs a line number")
		}
		return c.OpenLine(n - 1)
	case "checkout":
		return c.ProceedToCheckout()
	}
	return fmt.Errorf("unknown command %q here, try help", cmd)
}

func (s *shell) checkout(ctx context.Context, c *screens.Checkout, cmd, arg string) error {
	switch cmd {
	case "name":
		c.SetName(arg)
		return nil
	case "address":
		c.SetAddress(arg)
		return nil
	case "place":
		return c.PlaceOrder(ctx)
	}
	return fmt.Errorf("unknown command %q here, try help", cmd)
}

func pick(products []catalog.Product, arg string) (catalog.Product, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(products) {
		return catalog.Product{}, fmt.Errorf("pick a number between 1 and %d", len(products))
	}
	return products[n-1], nil
}

func (s *shell) render() {
	var b strings.Builder

	switch cur := s.app.Current().(type) {
	case *screens.Home:
		fmt.Fprintf(&b, "== Home ==  cart: %d  category: %s  sort: %s", cur.CartCount(), cur.Category(), cur.Sort())
		if q := cur.Search(); q != "" {
			fmt.Fprintf(&b, "  search: %q", q)
		}
		b.WriteString("\n")
		if f := cur.Featured(); len(f) > 0 {
			fmt.Fprintf(&b, "Discover more: %s\n", f[0].Title)
		}
		if msg := cur.Error(); msg != "" {
			fmt.Fprintf(&b, "%s\n", msg)
			break
		}
		writeProducts(&b, cur.Products())

	case *screens.Details:
		p := cur.Product()
		fmt.Fprintf(&b, "== %s ==\n$%.2f  %s\n%s\n", p.Title, p.Price, rating(p), p.Description)
		fmt.Fprintf(&b, "quantity: %d\n", cur.Quantity())
		if cur.ActionsVisible() {
			b.WriteString("actions: add, wish, share\n")
		}
		if rel := cur.Related(); len(rel) > 0 {
			b.WriteString("Related products:\n")
			writeProducts(&b, rel)
		}

	case *screens.Cart:
		b.WriteString("== Cart ==\n")
		lines := cur.Lines()
		if len(lines) == 0 {
			b.WriteString("Your cart is empty!\n")
			break
		}
		for i, l := range lines {
			fmt.Fprintf(&b, "%2d. %s  x%d  $%.2f\n", i+1, l.Title, l.Qty(), l.Price)
		}
		fmt.Fprintf(&b, "Total: $%s\n", cur.Total().StringFixed(2))

	case *screens.Checkout:
		b.WriteString("== Checkout ==\nOrder Summary\n")
		q := cur.Quote()
		for _, l := range q.Lines {
			fmt.Fprintf(&b, "  %s  x%d  $%s\n", l.Title, l.Quantity, l.LineTotal.StringFixed(2))
		}
		fmt.Fprintf(&b, "Total: $%s\n", q.Total.StringFixed(2))
		f := cur.Form()
		fmt.Fprintf(&b, "name: %q  address: %q\n", f.Name, f.Address)

	case *screens.ThankYou:
		b.WriteString("== Thank You! ==\nYour order has been placed successfully.\n")
		if c := cur.Confirmation(); c != nil {
			fmt.Fprintf(&b, "order %s, %d item(s), $%s\n", c.OrderID, c.Lines, c.Total.StringFixed(2))
		}
		b.WriteString("type 'home' to go to Home\n")
	}

	s.printf("%s", b.String())
}

func writeProducts(b *strings.Builder, products []catalog.Product) {
	for i, p := range products {
		fmt.Fprintf(b, "%2d. %s  $%.2f  %s\n", i+1, p.Title, p.Price, rating(p))
	}
}

func rating(p catalog.Product) string {
	if p.Rating == nil {
		return "No rating"
	}
	return fmt.Sprintf("* %.1f (%d)", p.Rating.Rate, p.Rating.Count)
}
