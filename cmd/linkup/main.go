// linkup is a terminal tile-matching game: clear the board by connecting
// pairs of identical tiles with a path of at most two bends.
//
// Usage:
//
//	linkup play [variant]   - Play (zen by default, or linkup_timed)
//	linkup menu             - Start menu to pick a mode interactively
//	linkup list             - List available modes
//	linkup serve            - Start SSH server for remote play
//	linkup scores <mode>    - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.linkup/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game variants to register them
	_ "github.com/danilvpetrov/linkup/internal/games/linkup"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linkup",
	Short: "Linkup - tile matching in your terminal",
	Long: `Linkup is a terminal tile-matching game. Connect pairs of identical
tiles with a path of at most two bends to clear them from the board.
Clear every pair and a fresh board is dealt.

Available commands:
  play     - Play directly (zen or timed)
  menu     - Interactive mode picker
  list     - Show all available modes
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  linkup play
  linkup play linkup_timed
  linkup menu
  linkup serve --ssh :2222
  linkup scores linkup`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.linkup/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
