package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// printSummary prints the post-conversion summary line:
//
//	✓ 12 nodes, 14 edges → out.json
func printSummary(nodes, edges int, dest string) {
	fmt.Fprintf(os.Stdout, "%s %s nodes, %s edges %s %s\n",
		styleSuccess.Render(iconSuccess),
		styleNumber.Render(strconv.Itoa(nodes)),
		styleNumber.Render(strconv.Itoa(edges)),
		styleDim.Render(iconArrow),
		dest)
}
