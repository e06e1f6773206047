package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
)

const sampleLedger = `100 "Jane Doe" 250.00
200 "Bob" 100.0
300 "Carol van Dam" 75.50
`

const sampleTransactions = "purchase\t200\t2024-03-01 10:15\t\"Corner Mart\"\t25.00\n" +
	"payment\t200\t2024-03-02 09:00\tcredit\t4111\t40.00\n" +
	"payment\t100\t2024-03-02 14:30\tcash\t\t10.00\n" +
	"purchase\t300\t2024-03-03 08:45\t\"Hardware Supply\"\t32.25\n" +
	"payment\t300\t2024-03-04 16:20\tcheck\t1017\t50.00\n"

// InitCmd writes sample input files so a new user can run the pipeline
// immediately.
type InitCmd struct {
	Dir   string `help:"Directory to write the sample files into." arg:"" optional:"" default:"."`
	Force bool   `help:"Overwrite existing files without asking." short:"f"`
}

func (cmd *InitCmd) Run(ctx *kong.Context, globals *Globals) error {
	files := []struct {
		name    string
		content string
	}{
		{"ledger.txt", sampleLedger},
		{"transactions.txt", sampleTransactions},
	}

	if err := os.MkdirAll(cmd.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	for _, file := range files {
		path := filepath.Join(cmd.Dir, file.name)

		if _, err := os.Stat(path); err == nil && !cmd.Force {
			confirmed, err := promptYesNo(fmt.Sprintf("File %q exists. Overwrite it?", path))
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			if !confirmed {
				printInfof(ctx.Stdout, "Skipped %s", pathStyle.Render(path))
				continue
			}
		}

		if err := os.WriteFile(path, []byte(file.content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		printSuccess(ctx.Stdout, fmt.Sprintf("Wrote %s", pathStyle.Render(path)))
	}

	printInfof(ctx.Stdout, "Try: bankstmt report %s %s",
		filepath.Join(cmd.Dir, "ledger.txt"),
		filepath.Join(cmd.Dir, "transactions.txt"))

	return nil
}
