// Command fixedstr drives the fixed-string library from the command line,
// mostly for poking at values while developing against it.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	fixedstr "github.com/wrsturgeon/fixed-string"
)

var rootCmd = &cobra.Command{
	Use:           "fixedstr",
	Short:         "Inspect fixed-string values",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var itoaCmd = &cobra.Command{
	Use:   "itoa <n>",
	Short: "Decimal fixed string for a non-negative integer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		s := fixedstr.Itoa(x)
		fmt.Printf("%s (len %d, digits %d)\n", s, s.Len(), fixedstr.DigitCount(x))
		return nil
	},
}

var concatCmd = &cobra.Command{
	Use:   "concat <part>...",
	Short: "Concatenate parts into one fixed string",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parts := make([]fixedstr.String, len(args))
		for i, a := range args {
			parts[i] = fixedstr.New(a)
		}
		s := fixedstr.Concat(parts...)
		fmt.Printf("%s (len %d)\n", s, s.Len())
		return nil
	},
}

var findCmd = &cobra.Command{
	Use:   "find <string> <byte>",
	Short: "First index of a byte, or the one-past-end sentinel",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args[1]) != 1 {
			return fmt.Errorf("want a single byte, got %q", args[1])
		}
		s := fixedstr.New(args[0])
		i := s.Find(args[1][0])
		if i == s.Len() {
			fmt.Printf("absent (sentinel %d)\n", i)
		} else {
			fmt.Printf("index %d\n", i)
		}
		return nil
	},
}

var substrCmd = &cobra.Command{
	Use:   "substr <string> <begin> <end>",
	Short: "Half-open slice [begin, end) as a fixed string",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		begin, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		end, err := strconv.Atoi(args[2])
		if err != nil {
			return err
		}
		s := fixedstr.Substring(fixedstr.New(args[0]), begin, end)
		fmt.Printf("%q (len %d)\n", s.String(), s.Len())
		return nil
	},
}

func main() {
	rootCmd.AddCommand(itoaCmd, concatCmd, findCmd, substrCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
