// Command wsdlinspect prints the typed model extracted from a WSDL
// document, either as a readable summary or as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yuntara/savon/wsdl"
)

var (
	jsonOutput   bool
	allowRemote  bool
	strictNames  bool
	debugLogging bool
	traceLogging bool
)

var rootCmd = &cobra.Command{
	Use:          "wsdlinspect <file-or-url>",
	Short:        "Inspect the types, messages and operations of a WSDL document",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := wsdl.NewLoader("")
		loader.AllowRemote = allowRemote
		loader.SetOptions(wsdl.NewOptions().WithStrictNames(strictNames))

		defs, err := loader.Load(args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(defs)
		}
		printSummary(defs)
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the model as JSON")
	rootCmd.Flags().BoolVar(&allowRemote, "remote", false, "allow http/https locations")
	rootCmd.Flags().BoolVar(&strictNames, "strict", false, "fail on duplicate type, message and operation names")
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "debug level logging")
	rootCmd.PersistentFlags().BoolVar(&traceLogging, "trace", false, "trace level logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		switch {
		case traceLogging:
			zerolog.SetGlobalLevel(zerolog.TraceLevel)
		case debugLogging:
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		default:
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
	}
}

func printSummary(defs *wsdl.Definitions) {
	fmt.Printf("service %s (%s)\n", defs.Name, defs.TargetNamespace)

	fmt.Printf("\ntypes (%d):\n", len(defs.Types))
	for _, name := range sortedKeys(defs.Types) {
		fmt.Printf("  %s\n", name)
		ct, ok := defs.Types[name].(*wsdl.ComplexType)
		if !ok {
			continue
		}
		for _, fieldName := range sortedKeys(ct.Fields) {
			field := ct.Fields[fieldName]
			fmt.Printf("    %s %s%s\n", fieldName, field.Type.TypeName(), fieldSuffix(field.Attr))
		}
	}

	fmt.Printf("\nmessages (%d):\n", len(defs.Messages))
	for _, name := range sortedKeys(defs.Messages) {
		m := defs.Messages[name]
		fmt.Printf("  %s: part %s element %s\n", name, m.PartName, m.PartElement)
	}

	fmt.Printf("\noperations (%d):\n", len(defs.Operations))
	for _, name := range sortedKeys(defs.Operations) {
		op := defs.Operations[name]
		fmt.Printf("  %s", name)
		if op.Input != "" {
			fmt.Printf(" in=%s", op.Input)
		}
		if op.Output != "" {
			fmt.Printf(" out=%s", op.Output)
		}
		if len(op.Faults) > 0 {
			fmt.Printf(" faults=%s", strings.Join(op.Faults, ","))
		}
		fmt.Println()
	}
}

func fieldSuffix(attr wsdl.TypeAttribute) string {
	var parts []string
	if attr.Nillable {
		parts = append(parts, "nillable")
	}
	if attr.MinOccurs != nil {
		parts = append(parts, "min="+attr.MinOccurs.String())
	}
	if attr.MaxOccurs != nil {
		parts = append(parts, "max="+attr.MaxOccurs.String())
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, " ") + "]"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
