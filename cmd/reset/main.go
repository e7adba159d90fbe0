// Command reset empties the binder in the configured store. The first set
// of the progression is unlocked again the next time the service starts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/special-brownies/booster-pack/internal/bootstrap"
	"github.com/special-brownies/booster-pack/internal/config"
	"github.com/special-brownies/booster-pack/internal/domain"
)

const confirmYes = "yes"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	yes := flag.Bool("yes", false, "Skip the confirmation prompt")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !*yes && !confirm(cfg) {
		log.Println("Aborted.")
		return
	}

	ctx := context.Background()
	store, err := bootstrap.OpenBinderStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open binder store: %v", err)
	}
	defer store.Close()

	if err := store.Repo.Save(ctx, domain.NewBinderState()); err != nil {
		log.Fatalf("Failed to reset binder: %v", err)
	}
	log.Printf("Binder in %s store reset.\n", store.Name)
}

func confirm(cfg *config.Config) bool {
	fmt.Printf("This erases every card in the %s binder store. Type %q to continue: ", cfg.BinderStore, confirmYes)
	var answer string
	if _, err := fmt.Fscanln(os.Stdin, &answer); err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), confirmYes)
}
