package command

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/practicalabs/dsakit/internal/logging"
	"github.com/practicalabs/dsakit/internal/users"
)

type usersConfig struct {
	Users []users.User `json:"users"`
}

// Users runs the role-management scenario: seed a small registry, trip the
// last-admin guard, then promote a moderator.
type Users struct {
	configFile string
}

func (cmd Users) Command(ctx context.Context) *cobra.Command {
	c := &cobra.Command{
		Use:   "users",
		Short: "exercise the role-based user registry",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(ctx)
		},
	}

	c.Flags().StringVar(&cmd.configFile, "config", "", "JSON file with the initial users")

	return c
}

func (cmd Users) getConfig() (usersConfig, error) {
	config := usersConfig{
		Users: []users.User{
			{Name: "Alice", Role: users.RoleAdmin},
			{Name: "Bob", Role: users.RoleModerator},
			{Name: "Charlie", Role: users.RoleUser},
		},
	}

	if cmd.configFile == "" {
		return config, nil
	}

	f, err := os.Open(cmd.configFile)
	if err != nil {
		return usersConfig{}, err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return usersConfig{}, err
	}

	if err := json.Unmarshal(raw, &config); err != nil {
		return usersConfig{}, err
	}

	return config, nil
}

func (cmd Users) main(ctx context.Context) {
	log := logging.FromContext(ctx)

	config, err := cmd.getConfig()
	if err != nil {
		log.Fatal("failed to load config", logging.Error(err))
	}

	manager := &users.Manager{}

	for _, u := range config.Users {
		if err := manager.Add(u.Name, u.Role); err != nil {
			log.Fatal("could not add user", logging.String("name", u.Name), logging.Error(err))
		}
		log.Info("user added", logging.String("name", u.Name), logging.Stringer("role", u.Role))
	}

	cmd.list(ctx, manager)

	all := config.Users
	if len(all) == 0 {
		return
	}

	// Walk the guard rails with whoever landed in the registry: the first
	// admin must be irremovable while alone, and the newest non-admin can
	// be dropped before another gets promoted.
	var firstAdmin, lastOther string
	for _, u := range all {
		if u.Role == users.RoleAdmin {
			if firstAdmin == "" {
				firstAdmin = u.Name
			}
		} else {
			lastOther = u.Name
		}
	}

	if firstAdmin != "" {
		if err := manager.Remove(firstAdmin); err != nil {
			log.Warn("removal refused", logging.String("name", firstAdmin), logging.Error(err))
		} else {
			log.Info("user removed", logging.String("name", firstAdmin))
		}
	}

	if lastOther != "" {
		if err := manager.Remove(lastOther); err != nil {
			log.Warn("removal refused", logging.String("name", lastOther), logging.Error(err))
		} else {
			log.Info("user removed", logging.String("name", lastOther))
		}
	}

	cmd.list(ctx, manager)

	for _, u := range manager.All() {
		if u.Role == users.RoleAdmin {
			continue
		}

		if err := manager.ChangeRole(u.Name, users.RoleAdmin); err != nil {
			log.Warn("role change refused", logging.String("name", u.Name), logging.Error(err))
			continue
		}

		log.Info("role changed", logging.String("name", u.Name), logging.Stringer("role", users.RoleAdmin))
		break
	}

	cmd.list(ctx, manager)
}

func (cmd Users) list(ctx context.Context, manager *users.Manager) {
	log := logging.FromContext(ctx)

	for _, u := range manager.All() {
		log.Info("user", logging.String("name", u.Name), logging.Stringer("role", u.Role))
	}

	admins, mods, regulars := manager.Counts()
	log.Info("totals",
		logging.Int("users", manager.Size()),
		logging.Int("admins", admins),
		logging.Int("mods", mods),
		logging.Int("regulars", regulars),
	)
}
