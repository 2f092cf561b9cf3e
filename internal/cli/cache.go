package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"toolcheck/internal/cache"
)

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheLsCmd)
	cacheCmd.AddCommand(cacheCleanCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or reset the version cache",
}

var cacheLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cached registry answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cache.Load()
		if len(c) == 0 {
			fmt.Println("cache is empty")
			return nil
		}
		now := time.Now()
		for _, name := range cache.Names(c) {
			rec := c[name]
			age := now.Sub(time.Unix(int64(rec.LastCheck), 0)).Truncate(time.Second)
			fmt.Printf("- %s: %s (checked %s ago)\n", name, rec.Latest, age)
		}
		return nil
	},
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the cache file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cache.Clear(); err != nil {
			return err
		}
		fmt.Println("cache cleared")
		return nil
	},
}
