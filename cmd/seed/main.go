// Command seed fills the catalog with sample products and can create an
// admin account, the only way to obtain the admin role.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopfront/admin-api/internal/core/domain"
	"github.com/shopfront/admin-api/internal/core/ports"
	"github.com/shopfront/admin-api/internal/core/security"
	"github.com/shopfront/admin-api/internal/infrastructure/db/mongo"
	"github.com/shopfront/admin-api/internal/pkg/config"
	"github.com/shopfront/admin-api/internal/pkg/validation"
	"github.com/shopfront/admin-api/pkg/logger"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

// run seeds the store. Every failure is returned so deferred cleanup runs.
func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	keep := fs.Bool("keep", false, "keep existing products instead of clearing the catalog")
	adminEmail := fs.String("admin-email", "", "create an admin account with this email")
	adminName := fs.String("admin-name", "Admin", "display name of the admin account")
	adminPassword := fs.String("admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "password of the admin account")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadSeed(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "shop-seed"})

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	provider := mongo.NewProvider(mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	defer func() {
		if err := provider.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := seedProducts(ctx, mongo.NewProductRepository(provider), *keep, log); err != nil {
		return fmt.Errorf("seeding products: %w", err)
	}

	if *adminEmail != "" {
		hasher := security.NewPasswordHasher(cfg.BcryptCost)
		if err := seedAdmin(ctx, mongo.NewUserRepository(provider), hasher, *adminName, *adminEmail, *adminPassword); err != nil {
			return fmt.Errorf("creating admin: %w", err)
		}
		log.Info().Str("email", *adminEmail).Msg("admin account ready")
	}

	log.Info().Msg("seeding completed")
	return nil
}

func seedProducts(ctx context.Context, repo *mongo.ProductRepository, keep bool, log zerolog.Logger) error {
	v := validation.New()
	for _, p := range sampleProducts {
		price := p.Price
		in := ports.CreateProductInput{Name: p.Name, Price: &price, Description: p.Description, Image: p.Image}
		if err := v.Struct(in); err != nil {
			return fmt.Errorf("sample %q: %w", p.Name, err)
		}
	}

	if !keep {
		n, err := repo.DeleteAll(ctx)
		if err != nil {
			return err
		}
		log.Info().Int64("removed", n).Msg("cleared existing products")
	}

	n, err := repo.InsertMany(ctx, sampleProducts)
	if err != nil {
		return err
	}
	for i, p := range sampleProducts {
		log.Info().Msgf("%d. %s - $%.2f", i+1, p.Name, p.Price)
	}
	log.Info().Int("inserted", n).Msg("sample products added")
	return nil
}

func seedAdmin(ctx context.Context, repo *mongo.UserRepository, hasher *security.PasswordHasher, name, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validation.New().Struct(ports.RegisterInput{Name: name, Email: email, Password: password}); err != nil {
		return err
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrUserExists) {
		return fmt.Errorf("%s is already registered", email)
	}
	return err
}
