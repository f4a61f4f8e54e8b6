package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// narrowThreshold is the terminal width below which the four columns stack
// vertically inside the viewport.
const narrowThreshold = 100

// scrollToActive brings the active column's section into view in the
// narrow layout. The first scroll jumps; later ones animate stepwise. Both
// raise a timed guard so the resulting viewport motion does not feed back
// into column selection.
func (m *Model) scrollToActive() tea.Cmd {
	if !m.narrow {
		return nil
	}

	offsets, _ := m.sectionLayout()
	if m.activeCol >= len(offsets) {
		return nil
	}
	target := clampOffset(offsets[m.activeCol], m.viewport.TotalLineCount(), m.viewport.Height)

	m.guardToken++
	m.guardActive = true

	if !m.scrolledOnce {
		m.scrolledOnce = true
		m.viewport.SetYOffset(target)
		return m.guardExpiryCmd(m.guardToken, jumpGuard)
	}

	m.scrollTarget = target
	return tea.Batch(
		m.scrollStepCmd(m.guardToken),
		m.guardExpiryCmd(m.guardToken, animateGuard),
	)
}

// handleScrollStepMsg advances one animation frame toward the target.
func (m *Model) handleScrollStepMsg(msg scrollStepMsg) (tea.Model, tea.Cmd) {
	if msg.token != m.guardToken || !m.guardActive {
		return m, nil
	}

	current := m.viewport.YOffset
	if current == m.scrollTarget {
		return m, nil
	}

	m.viewport.SetYOffset(stepToward(current, m.scrollTarget))
	if m.viewport.YOffset == m.scrollTarget {
		return m, nil
	}
	return m, m.scrollStepCmd(msg.token)
}

// handleScrollGuardMsg lowers the guard when its timer carries the current
// token; expired timers from earlier scrolls are ignored.
func (m *Model) handleScrollGuardMsg(msg scrollGuardMsg) (tea.Model, tea.Cmd) {
	if msg.token != m.guardToken {
		return m, nil
	}
	m.guardActive = false
	return m, nil
}

// syncActiveToScroll is called after user-driven viewport motion. Inside
// the guard window the motion is programmatic residue and ignored; outside
// it, the section nearest the viewport center becomes active.
func (m *Model) syncActiveToScroll() {
	if !m.narrow || m.guardActive {
		return
	}

	offsets, heights := m.sectionLayout()
	m.activeCol = sectionNearestCenter(offsets, heights, m.viewport.YOffset, m.viewport.Height)
	m.clampCursor()
}

// sectionLayout returns each column section's line offset and height in
// the stacked narrow rendering.
func (m *Model) sectionLayout() (offsets, heights []int) {
	offsets = make([]int, len(m.columns))
	heights = make([]int, len(m.columns))
	offset := 0
	for i, col := range m.columns {
		offsets[i] = offset
		heights[i] = sectionHeight(len(col))
		offset += heights[i]
	}
	return offsets, heights
}

// sectionHeight is the rendered line count of one stacked column: header,
// rows (or an empty placeholder), and a trailing blank.
func sectionHeight(rows int) int {
	if rows == 0 {
		rows = 1
	}
	return rows + 2
}

// sectionNearestCenter picks the section whose midpoint is closest to the
// visible center.
func sectionNearestCenter(offsets, heights []int, yOffset, viewHeight int) int {
	center := yOffset + viewHeight/2
	best := 0
	bestDist := -1
	for i := range offsets {
		mid := offsets[i] + heights[i]/2
		dist := center - mid
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// stepToward moves current one animation step toward target, covering a
// quarter of the remaining distance but at least one line.
func stepToward(current, target int) int {
	diff := target - current
	step := diff / 4
	if step == 0 {
		if diff > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	return current + step
}

func clampOffset(offset, totalLines, viewHeight int) int {
	maxOffset := totalLines - viewHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	if offset < 0 {
		return 0
	}
	return offset
}
