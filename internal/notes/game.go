package notes

import (
	"fmt"
	"strings"

	"github.com/lepinkainen/steamstats/internal/library"
)

// GameNote renders one library game as a markdown note. headerImage is a
// relative path to downloaded header art, empty when none was fetched.
func GameNote(game library.GameView, headerImage string) ([]byte, error) {
	fm := NewFrontmatterWithTitle(game.Name)
	fm.Set("appid", game.AppID)
	fm.Set("playtime_hours", game.PlaytimeHours)
	fm.Set("last_played", game.LastPlayed)
	fm.Set("tags", []string{"steam/game"})
	if headerImage != "" {
		fm.Set("cover", headerImage)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "# %s\n\n", game.Name)
	if headerImage != "" {
		fmt.Fprintf(&body, "![](%s)\n\n", headerImage)
	}
	body.WriteString("## Stats\n")
	fmt.Fprintf(&body, "- **Playtime**: %.1f hours\n", game.PlaytimeHours)
	fmt.Fprintf(&body, "- **Last Played**: %s\n", game.LastPlayed)
	fmt.Fprintf(&body, "- **Steam AppID**: %d\n", game.AppID)

	return BuildNote(fm, body.String())
}
