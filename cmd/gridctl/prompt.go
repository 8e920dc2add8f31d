package main

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingrea/gridctl/internal/platform"
)

// taskGroupChooser prompts the user when a work requirement holds more than
// one task group.
func (t *toolkit) taskGroupChooser(cmd *cobra.Command) platform.TaskGroupChooser {
	return func(groups []platform.TaskGroup) (platform.TaskGroup, error) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "The work requirement has multiple task groups:")
		for i, g := range groups {
			fmt.Fprintf(out, "  %d. %s (%s)\n", i+1, g.Name, g.ID)
		}
		fmt.Fprintf(out, "Task group number [1-%d]: ", len(groups))
		line, err := readLine(cmd)
		if err != nil {
			return platform.TaskGroup{}, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > len(groups) {
			return platform.TaskGroup{}, fmt.Errorf("invalid task group number %q", strings.TrimSpace(line))
		}
		return groups[n-1], nil
	}
}

// detailIndices decides which detail tables to print. An explicit --detail
// value is parsed directly; otherwise the user is prompted after the
// summary table.
func (t *toolkit) detailIndices(cmd *cobra.Command, detail string, count int) ([]int, error) {
	if count == 0 {
		return nil, nil
	}
	if strings.TrimSpace(detail) == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\nDetail for which rows? (e.g. 1,3 · all · none): ")
		line, err := readLine(cmd)
		if err != nil {
			return nil, err
		}
		detail = line
	}
	return parseDetailSelection(detail, count)
}

// parseDetailSelection turns "all", "none"/"" or a comma-separated list of
// 1-based row numbers into zero-based report indices, deduplicated and
// ordered.
func parseDetailSelection(input string, count int) ([]int, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	switch input {
	case "", "none":
		return nil, nil
	case "all":
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}
	seen := map[int]struct{}{}
	var indices []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > count {
			return nil, fmt.Errorf("invalid row number %q (expected 1-%d)", part, count)
		}
		if _, ok := seen[n-1]; ok {
			continue
		}
		seen[n-1] = struct{}{}
		indices = append(indices, n-1)
	}
	sort.Ints(indices)
	return indices, nil
}

func readLine(cmd *cobra.Command) (string, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read selection: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
