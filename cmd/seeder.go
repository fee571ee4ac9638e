package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/bomberosvinadelmar/portal-admin/internal/auth"
	"github.com/bomberosvinadelmar/portal-admin/internal/citation"
	"github.com/bomberosvinadelmar/portal-admin/internal/permission"
	"github.com/bomberosvinadelmar/portal-admin/internal/personnel"
	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
	"github.com/bomberosvinadelmar/portal-admin/internal/storage"
	"github.com/bomberosvinadelmar/portal-admin/internal/video"
	"github.com/bomberosvinadelmar/portal-admin/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the portal storage with sample data",
	Long:  `Seed the configured storage backend with the default permission table, bcrypt credentials and sample records for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init("development")
		lg := logger.LoggerWrapper()

		st, closeFn, err := initStorage(cfg.Storage)
		if err != nil {
			log.Fatalf("failed to init storage: %v", err)
		}
		if closeFn != nil {
			defer closeFn()
		}

		ctx := context.Background()

		if clearData {
			for _, key := range []string{
				storage.KeySession,
				storage.KeyAuthenticated,
				storage.KeyPermissions,
				storage.KeyPersonnel,
				storage.KeyCitations,
				storage.KeyVideos,
				storage.KeyRegistrations,
				storage.KeyCredentials,
			} {
				if err := st.Delete(ctx, key); err != nil {
					log.Fatalf("failed to clear %s: %v", key, err)
				}
			}
			fmt.Println("Cleared existing portal data")
		}

		// Instantiating the permission service seeds the default table
		// when none is stored.
		permission.NewService(ctx, st, lg)
		fmt.Println("Seeded permission table")

		seedCredentials(ctx, st, cfg.Security.BCryptCost)
		seedPersonnel(ctx, st, lg)
		seedCitations(ctx, st, lg)
		seedVideos(ctx, st, lg)

		fmt.Println("Seeding complete")
	},
}

// seedCredentials hashes a development password for every catalog
// principal so the server starts with the bcrypt verifier.
func seedCredentials(ctx context.Context, st storage.Store, cost int) {
	if _, err := st.Get(ctx, storage.KeyCredentials); err == nil {
		fmt.Println("Credentials already seeded; skipping")
		return
	}

	principals := make([]auth.BcryptPrincipal, 0, len(auth.DefaultPrincipals()))
	for _, p := range auth.DefaultPrincipals() {
		hash, err := auth.HashPassword("bomberos2024", cost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}
		principals = append(principals, auth.BcryptPrincipal{Principal: p, PasswordHash: hash})
	}

	data, err := json.Marshal(principals)
	if err != nil {
		log.Fatalf("failed to marshal credentials: %v", err)
	}
	if err := st.Set(ctx, storage.KeyCredentials, string(data)); err != nil {
		log.Fatalf("failed to store credentials: %v", err)
	}
	fmt.Println("Seeded bcrypt credentials for", len(principals), "principals")
}

func seedPersonnel(ctx context.Context, st storage.Store, lg *slog.Logger) {
	svc := personnel.NewService(personnel.NewRepository(st), lg)

	existing, err := svc.ListRecords(ctx)
	if err != nil {
		log.Fatalf("failed to list personnel: %v", err)
	}
	if len(existing) > 0 {
		fmt.Println("Personnel already seeded; skipping")
		return
	}

	samples := samplePersonnel()

	for _, dto := range samples {
		if _, err := svc.CreateRecord(ctx, dto); err != nil {
			log.Fatalf("failed to seed personnel record: %v", err)
		}
	}
	fmt.Println("Seeded", len(samples), "personnel records")
}

// samplePersonnel is the development roster. Every entry must pass the
// personnel create validation or seeding aborts.
func samplePersonnel() []personnel.CreateRecordDTO {
	return []personnel.CreateRecordDTO{
		{
			FirstName:      "Carlos",
			LastName:       "Fuentes",
			NationalID:     "12.345.678-5",
			Email:          "carlos.fuentes@bomberosvinadelmar.cl",
			Phone:          "+56912345678",
			EmergencyPhone: "+56987654321",
			Address:        "Calle Álvarez 1234, Viña del Mar",
			Company:        "Comando",
			Role:           roles.RoleDirector.String(),
		},
		{
			FirstName:      "Andrea",
			LastName:       "Soto",
			NationalID:     "16.874.325-4",
			Email:          "andrea.soto@bomberosvinadelmar.cl",
			Phone:          "+56923456789",
			EmergencyPhone: "+56998765432",
			Address:        "Avenida Libertad 567, Viña del Mar",
			Company:        "Segunda Compañía",
			Role:           roles.RoleCapitan.String(),
		},
		{
			FirstName:      "Pedro",
			LastName:       "Rojas",
			NationalID:     "18.456.789-K",
			Email:          "pedro.rojas@bomberosvinadelmar.cl",
			Phone:          "+56934567890",
			EmergencyPhone: "+56911223344",
			Address:        "Pasaje Los Castaños 89, Quilpué",
			Company:        "Segunda Compañía",
			Role:           roles.RoleBomberoActivo.String(),
		},
	}
}

func seedCitations(ctx context.Context, st storage.Store, lg *slog.Logger) {
	svc := citation.NewService(citation.NewRepository(st), lg)

	existing, err := svc.ListCitations(ctx)
	if err != nil {
		log.Fatalf("failed to list citations: %v", err)
	}
	if len(existing) > 0 {
		fmt.Println("Citations already seeded; skipping")
		return
	}

	if _, err := svc.CreateCitation(ctx, citation.CreateCitationDTO{
		Title:     "Academia mensual de rescate",
		Body:      "Academia obligatoria de rescate vehicular con material mayor.",
		Date:      time.Now().AddDate(0, 0, 14),
		Place:     "Cuartel Segunda Compañía",
		Companies: []string{"Segunda Compañía"},
		Mandatory: true,
	}, "seed"); err != nil {
		log.Fatalf("failed to seed citation: %v", err)
	}
	fmt.Println("Seeded 1 citation")
}

func seedVideos(ctx context.Context, st storage.Store, lg *slog.Logger) {
	svc := video.NewService(video.NewRepository(st), lg)

	existing, err := svc.ListVideos(ctx)
	if err != nil {
		log.Fatalf("failed to list videos: %v", err)
	}
	if len(existing) > 0 {
		fmt.Println("Videos already seeded; skipping")
		return
	}

	if _, err := svc.CreateVideo(ctx, video.CreateVideoDTO{
		Title:       "Uso de equipos de respiración autónoma",
		URL:         "https://videos.bomberosvinadelmar.cl/era-basico",
		Category:    "capacitacion",
		Description: "Capacitación básica en equipos ERA.",
	}); err != nil {
		log.Fatalf("failed to seed video: %v", err)
	}
	fmt.Println("Seeded 1 video")
}
