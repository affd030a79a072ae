package cmd

import (
	"fmt"

	"github.com/chrisdamba/foodcatalog/internal/favorites"
	"github.com/chrisdamba/foodcatalog/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	favoriteUser       string
	favoriteRestaurant string
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage a user's favorite restaurants",
}

func withStore(run func(cmd *cobra.Command, store favorites.Store) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		store, err := favorites.OpenSQLite(cfg.Favorites.DSN)
		if err != nil {
			return err
		}
		defer store.Close()
		return run(cmd, store)
	}
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's favorites",
	RunE: withStore(func(cmd *cobra.Command, store favorites.Store) error {
		ids, err := store.List(cmd.Context(), favoriteUser)
		if err != nil {
			return err
		}
		catalog, err := models.LoadCatalog(cfg.Search.CatalogPath)
		if err != nil {
			logger.Debug("no catalog for favorite names", "path", cfg.Search.CatalogPath, "error", err)
		}
		out := cmd.OutOrStdout()
		if len(ids) == 0 {
			fmt.Fprintf(out, "%s has no favorites\n", favoriteUser)
			return nil
		}
		for _, id := range ids {
			if r, ok := catalog.Find(id); ok {
				fmt.Fprintf(out, "%s\t%s\n", id, r.Name)
				continue
			}
			fmt.Fprintln(out, id)
		}
		return nil
	}),
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a restaurant to a user's favorites",
	RunE: withStore(func(cmd *cobra.Command, store favorites.Store) error {
		if err := store.Add(cmd.Context(), favoriteUser, favoriteRestaurant); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Restaurant added to favorites")
		return nil
	}),
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a restaurant from a user's favorites",
	RunE: withStore(func(cmd *cobra.Command, store favorites.Store) error {
		if err := store.Remove(cmd.Context(), favoriteUser, favoriteRestaurant); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Restaurant removed from favorites")
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritesListCmd, favoritesAddCmd, favoritesRemoveCmd)

	favoritesCmd.PersistentFlags().StringVar(&favoriteUser, "user", "", "user id")
	favoritesCmd.PersistentFlags().String("dsn", "favorites.db", "SQLite database for favorites")
	favoritesAddCmd.Flags().StringVar(&favoriteRestaurant, "restaurant", "", "restaurant id")
	favoritesRemoveCmd.Flags().StringVar(&favoriteRestaurant, "restaurant", "", "restaurant id")

	if err := viper.BindPFlag("favorites.dsn", favoritesCmd.PersistentFlags().Lookup("dsn")); err != nil {
		panic(err)
	}
}
