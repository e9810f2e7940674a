package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/framefixtures/dtype"
	"github.com/katalvlaran/framefixtures/grammar"
)

func newSpecifiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "specifiers",
		Short: "List constructor and dtype specifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := dtype.DefaultRegistry()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n",
				docTable([]string{"Symbol", "Constructor"}, specifierRows(grammar.ConstructorDocs(reg))),
				docTable([]string{"Symbol", "DType"}, specifierRows(grammar.DTypeDocs(reg))),
			)
			return err
		},
	}
}

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Describe the DSL components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := grammar.ComponentDocs()
			rows := make([][]string, len(docs))
			for i, d := range docs {
				rows[i] = []string{d.Symbol.String(), d.Component, fmt.Sprint(d.Required), d.Arguments, d.Signature}
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(),
				docTable([]string{"Symbol", "Component", "Required", "Arguments", "Signature"}, rows))
			return err
		},
	}
}

func specifierRows(docs []grammar.SpecifierDoc) [][]string {
	rows := make([][]string, len(docs))
	for i, d := range docs {
		rows[i] = []string{d.Symbol, d.Class}
	}
	return rows
}

func docTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
