package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/petscare/petscare_backend/config"
	"github.com/petscare/petscare_backend/internal/repo"
	entuser "github.com/petscare/petscare_backend/internal/repo/user"
	"github.com/petscare/petscare_backend/pkg/authorize"
	"github.com/petscare/petscare_backend/pkg/database"
	"github.com/petscare/petscare_backend/pkg/schedule"
)

func NewSeedCommand() *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Sync Casbin role assignments from the users table",
		Long: `Seed walks the users table and grants each user its Casbin role
grouping, so permission checks work for accounts created before RBAC was
enabled or imported from the identity service. With --demo it also creates
a small set of demo accounts, doctors, and pets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			casbinDSN := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(casbinDSN)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer, cfg.Authorization.SuperadminBypass)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			if demo {
				if err := seedDemoData(ctx, client); err != nil {
					return fmt.Errorf("failed to seed demo data: %w", err)
				}
			}

			n, err := syncUserRoles(ctx, client, auth)
			if err != nil {
				return fmt.Errorf("failed to sync user roles: %w", err)
			}

			fmt.Printf("Role assignments synced for %d users.\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "also create demo users, doctors, and pets")

	return cmd
}

func syncUserRoles(ctx context.Context, client *repo.Client, auth authorize.IAuthorization) (int, error) {
	users, err := client.User.Query().All(ctx)
	if err != nil {
		return 0, err
	}
	for _, u := range users {
		if err := authorize.AssignUserRole(ctx, auth, u.ID.String(), string(u.Role)); err != nil {
			return 0, fmt.Errorf("user %s: %w", u.Email, err)
		}
	}
	return len(users), nil
}

func seedDemoData(ctx context.Context, client *repo.Client) error {
	owner, err := client.User.Create().
		SetName("Jamie Rivera").
		SetEmail("jamie@example.com").
		SetRole(entuser.RolePetOwner).
		Save(ctx)
	if err != nil {
		return err
	}

	_, err = client.User.Create().
		SetName("Dana Mehta").
		SetEmail("dana@petscare.app").
		SetRole(entuser.RoleDoctor).
		Save(ctx)
	if err != nil {
		return err
	}

	_, err = client.User.Create().
		SetName("Clinic Admin").
		SetEmail("admin@petscare.app").
		SetRole(entuser.RoleAdmin).
		Save(ctx)
	if err != nil {
		return err
	}

	_, err = client.Doctor.Create().
		SetName("Dana Mehta").
		SetEmail("dana@petscare.app").
		SetSpecialization("General Practice").
		SetAvailability("Weekdays 09:00-17:00").
		SetSchedule(schedule.Weekly{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
			{DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00"},
			{DayOfWeek: 3, StartTime: "09:00", EndTime: "17:00"},
			{DayOfWeek: 4, StartTime: "09:00", EndTime: "17:00"},
			{DayOfWeek: 5, StartTime: "09:00", EndTime: "13:00"},
		}).
		Save(ctx)
	if err != nil {
		return err
	}

	_, err = client.Pet.Create().
		SetOwnerID(owner.ID).
		SetName("Max").
		SetType("dog").
		SetBreed("Labrador").
		SetAge(4).
		Save(ctx)
	return err
}
