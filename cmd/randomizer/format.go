package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/island-randomizer/internal/engine/partition"
	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/orchestrators/rules"
	"github.com/KirkDiggler/island-randomizer/internal/orchestrators/team"
)

// oneDecimal renders v rounded to one decimal place without trailing zeros.
// NaN, the value of an empty team, renders as a dash.
func oneDecimal(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	rounded := math.Round(v*10) / 10
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// levelLabel names an adversary level the way the board game does
func levelLabel(level int) string {
	if level == 0 {
		return "Base"
	}
	return "L" + strconv.Itoa(level)
}

// parseRuleChoice splits "name:level" into its parts. A missing or
// non-numeric suffix means the base level.
func parseRuleChoice(arg string) (string, int) {
	idx := strings.LastIndex(arg, ":")
	if idx < 0 {
		return arg, 0
	}
	level, err := strconv.Atoi(arg[idx+1:])
	if err != nil {
		return arg, 0
	}
	return arg[:idx], level
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printSpirits(w io.Writer, spirits []entities.Spirit) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "NAME\tCOMPLEXITY\tEXPANSION\tOFF\tCTL\tFEAR\tDEF\tUTIL")
	for _, s := range spirits {
		fmt.Fprintf(tw, "%s\t%s\t%s", s.Name, s.Complexity, s.Expansion)
		for _, stat := range entities.StatList {
			fmt.Fprintf(tw, "\t%s", oneDecimal(s.Stats.Get(stat)))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func printRules(w io.Writer, list []entities.Rule) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "NAME\tTYPE\tEXPANSION\tDIFFICULTY")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.GetName(), r.GetType(), r.GetExpansion(), difficulties(r))
	}
	return tw.Flush()
}

func difficulties(r entities.Rule) string {
	switch v := r.(type) {
	case *entities.Scenario:
		return oneDecimal(v.Difficulty)
	case *entities.Adversary:
		parts := make([]string, len(v.Difficulties))
		for i, d := range v.Difficulties {
			parts[i] = oneDecimal(d)
		}
		return strings.Join(parts, "/")
	default:
		return ""
	}
}

func printTeam(w io.Writer, state team.State) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "TEAM\tCOMPLEXITY\tEXPANSION")
	for _, s := range state.Chosen() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Complexity, s.Expansion)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	averages := state.StatAverages()
	parts := make([]string, len(averages))
	for i, avg := range averages {
		parts[i] = fmt.Sprintf("%s %s", avg.Stat, oneDecimal(avg.Value))
	}
	fmt.Fprintf(w, "\naverages: %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(w, "MAD: %s (target %s, towards %s)\n", oneDecimal(state.MAD()), oneDecimal(state.MADTarget), state.Direction)
	return nil
}

func printChosenRules(w io.Writer, state rules.State) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "CHOSEN\tTYPE\tLEVEL\tDIFFICULTY")
	for _, e := range state.Rules.Chosen {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name(), e.Item.GetType(), entryLevel(e), oneDecimal(entities.RuleDifficulty(e.Item, e.Level)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\ntotal difficulty: %s (target %s-%s)\n",
		oneDecimal(state.TotalDifficulty()), oneDecimal(state.Range.Min), oneDecimal(state.Range.Max))
	return nil
}

func entryLevel(e partition.Entry[entities.Rule]) string {
	if _, ok := e.Item.(*entities.Adversary); !ok {
		return "-"
	}
	return levelLabel(e.Level)
}

func printProfiles(w io.Writer, profiles []*entities.Profile) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tTEAM\tRULES\tUPDATED")
	for _, p := range profiles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, yesNo(p.Team != nil), yesNo(p.Rules != nil), p.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
