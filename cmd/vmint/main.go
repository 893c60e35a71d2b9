package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"vmint/pkg/intval"
)

var (
	logger  *zap.Logger
	verbose bool

	quietMode bool
	hexOutput bool
	groupFlag bool
	widthFlag int
)

var rootCmd = &cobra.Command{
	Use:   "vmint",
	Short: "Calculator over the VM's 257-bit integer cells",
	Long: `vmint evaluates integer expressions with the exact semantics of the
VM's numeric cells: every result is bounded to 257 bits and, in quiet mode,
invalid inputs and overflows propagate as NaN instead of failing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate an expression and print the result",
	Long: `Evaluates an integer expression over 257-bit cells.

Operators, loosest binding first: | ^ & << >> + - * / % and unary - ~.
Division and modulo round toward negative infinity. Literals may use
decimal, 0x, 0o or 0b notation.

Example:
  vmint eval "(1 << 255) - 1"
  vmint eval --quiet "1 << 300"`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

var bitsCmd = &cobra.Command{
	Use:   "bits [expression]",
	Short: "Report bit-width facts about an expression's value",
	Args:  cobra.ExactArgs(1),
	RunE:  runBits,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	evalCmd.Flags().BoolVarP(&quietMode, "quiet", "q", false, "quiet mode: yield NaN instead of failing")
	evalCmd.Flags().BoolVarP(&hexOutput, "hex", "x", false, "print the result in hexadecimal")
	evalCmd.Flags().BoolVarP(&groupFlag, "group", "g", false, "group digits in decimal output")

	bitsCmd.Flags().IntVarP(&widthFlag, "width", "w", 257, "width to test the value against")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(bitsCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	mode := intval.CheckedMode
	if quietMode {
		mode = intval.QuietMode
	}
	logger.Debug("evaluating expression",
		zap.String("expr", args[0]),
		zap.Stringer("mode", mode))

	result, err := evalExpression(args[0], mode)
	if err != nil {
		logger.Debug("evaluation failed", zap.Error(err))
		return err
	}
	fmt.Println(formatValue(result))
	return nil
}

func runBits(cmd *cobra.Command, args []string) error {
	// Bit-width queries are only defined for valid numbers, so the
	// expression itself is evaluated in checked mode.
	value, err := evalExpression(args[0], intval.CheckedMode)
	if err != nil {
		return err
	}
	fmt.Printf("value:    %s\n", value)
	fmt.Printf("bitsize:  %d\n", value.Bitsize())
	if value.IsNeg() {
		fmt.Printf("ubitsize: n/a (negative)\n")
	} else {
		fmt.Printf("ubitsize: %d\n", value.UBitsize())
	}
	fmt.Printf("fits in %d signed bits:   %v\n", widthFlag, value.FitsIn(widthFlag))
	fmt.Printf("fits in %d unsigned bits: %v\n", widthFlag, value.UFitsIn(widthFlag))
	return nil
}

// formatValue renders a result per the output flags. Digit grouping uses the
// locale-aware printer for values in native range and falls back to manual
// three-digit chunking beyond it.
func formatValue(v intval.Value) string {
	if v.IsNaN() {
		return "NaN"
	}
	if hexOutput {
		return "0x" + v.Text(16)
	}
	if !groupFlag {
		return v.String()
	}
	if i, err := v.ToInt64(); err == nil {
		return message.NewPrinter(language.English).Sprintf("%d", i)
	}
	return groupDigits(v.String())
}

// groupDigits inserts thousands separators into a plain decimal string.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
