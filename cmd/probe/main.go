// Command probe runs storefront catalog queries against a live backend from
// the terminal. One-shot mode prints the products for a filter query;
// interactive mode drives the debounced search session with lines from stdin,
// which is handy for watching debounce and cancellation behave against a slow
// backend.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/i-iangurazov/roksosh/catalog"
	"github.com/i-iangurazov/roksosh/config"
	"github.com/i-iangurazov/roksosh/models"
	"github.com/i-iangurazov/roksosh/search"
)

func main() {
	_ = godotenv.Load()
	config.LoadEnv()

	var (
		apiURL      = flag.String("api", config.APIBaseURL, "backend storefront API root")
		categoryID  = flag.String("category", "", "category id")
		colors      = flag.String("colors", "", "comma separated color ids")
		sizes       = flag.String("sizes", "", "comma separated size ids")
		brands      = flag.String("brands", "", "comma separated brands")
		priceSort   = flag.String("sort", "", "price sort: asc or desc")
		term        = flag.String("search", "", "search term")
		interactive = flag.Bool("interactive", false, "interactive search session on stdin")
	)
	flag.Parse()

	coordinator := catalog.NewCoordinator(*apiURL)

	if *interactive {
		runInteractive(coordinator)
		return
	}

	query := models.FilterQuery{
		CategoryID: *categoryID,
		ColorIDs:   splitList(*colors),
		SizeIDs:    splitList(*sizes),
		Brands:     splitList(*brands),
		PriceSort:  *priceSort,
		SearchTerm: *term,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	printProducts(coordinator.FetchOnce(ctx, query))
}

func runInteractive(coordinator *catalog.Coordinator) {
	session := search.NewSession(coordinator,
		search.WithOnChange(func(state search.State, results []models.Product) {
			fmt.Printf("-- %s\n", state)
			if state == search.Settled {
				printProducts(results)
			}
		}),
	)

	fmt.Println("type to search, empty line to clear, ^D to quit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		session.SetQuery(scanner.Text())
		// leave room for the debounce and the fetch to settle before the
		// next prompt line
		time.Sleep(search.DefaultDebounce * 4)
	}

	fmt.Println("submit url:", session.SubmitURL())
}

func printProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Println("no products")
		return
	}
	for _, p := range products {
		fmt.Printf("%-24s %-32s %-16s %.2f\n", p.ID, p.Name, p.Brand, p.Price)
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
