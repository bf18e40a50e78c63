package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

// musicItem maps a playable thing to its Spotify content type.
type musicItem struct {
	query, kind string
}

var musicItems = []musicItem{
	{"jazz", "playlist"}, {"Bohemian Rhapsody", "track"}, {"Taylor Swift", "artist"},
	{"Abbey Road", "album"}, {"lo-fi beats", "playlist"}, {"chill", "playlist"},
	{"Beethoven", "artist"}, {"workout", "playlist"}, {"classical", "playlist"},
	{"relaxing music", "playlist"}, {"Daft Punk", "artist"}, {"rock", "playlist"},
	{"hip hop", "playlist"}, {"EDM", "playlist"}, {"pop hits", "playlist"},
	{"80s music", "playlist"}, {"country", "playlist"}, {"indie", "playlist"},
	{"metal", "playlist"}, {"R&B", "playlist"}, {"Blinding Lights", "track"},
	{"Hotel California", "track"}, {"Stairway to Heaven", "track"}, {"Drake", "artist"},
	{"The Beatles", "artist"}, {"Coldplay", "artist"}, {"Pink Floyd", "artist"},
	{"Eminem", "artist"}, {"Dark Side of the Moon", "album"}, {"Thriller", "album"},
	{"focus music", "playlist"}, {"study music", "playlist"}, {"party music", "playlist"},
	{"ambient", "playlist"}, {"acoustic", "playlist"}, {"piano music", "playlist"},
}

var musicPlayPatterns = []string{
	"Play {i}", "Put on {i}", "play {i}", "i want to listen to {i}",
	"play me {i}", "lets hear {i}", "queue up {i}", "start {i}",
}

// playArgs derives the play_music arguments for an item. Shuffle is an
// occasional extra, drawn by the caller so the label stays deterministic
// per (item, draw).
func playArgs(item musicItem, shuffle bool) map[string]any {
	args := map[string]any{"query": item.query, "type": item.kind}
	if shuffle {
		args["shuffle"] = true
	}
	return args
}

var musicControls = []struct {
	tool, trace string
	msgs        []string
}{
	{"pause_music", "Pause music.", []string{"Pause", "Stop", "pause music", "stop playing", "hold on", "pause the music"}},
	{"skip_track", "Skip track.", []string{"Skip", "Next", "skip track", "next song", "skip this", "play next"}},
	{"previous_track", "Previous track.", []string{"Previous", "Go back", "last song", "previous track", "replay last"}},
	{"get_currently_playing", "Get current track.", []string{"What's playing?", "What song is this?", "current track", "now playing", "what am i listening to"}},
}

var musicVolumes = []struct {
	percent int
	prefix  string
}{
	{70, "Turn up"}, {30, "Turn down"}, {50, "Set to 50"}, {80, "Louder"},
	{25, "Quieter"}, {100, "Max"}, {0, "Mute"},
}

func genMusic(rng *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "play_music", "pause_music", "skip_track",
		"previous_track", "get_currently_playing", "search_music", "set_volume")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, item := range musicItems {
		for _, pattern := range sample(rng, musicPlayPatterns, 3) {
			msg, err := fill(pattern, "i", item.query)
			if err != nil {
				return nil, err
			}
			args := playArgs(item, chance(rng, 0.2))
			trace := fmt.Sprintf("Play music: %s", item.query)
			out = withVariants(rng, out, corpus.New(msg, "play_music", args, tools, trace), 2)
		}
	}
	for _, control := range musicControls {
		for _, msg := range control.msgs {
			out = append(out, corpus.New(msg, control.tool, map[string]any{}, tools, control.trace))
		}
	}
	for _, v := range musicVolumes {
		msg := fmt.Sprintf("%s the volume", v.prefix)
		args := map[string]any{"volume_percent": v.percent}
		out = append(out, corpus.New(msg, "set_volume", args, tools, fmt.Sprintf("Set volume to %d.", v.percent)))
	}
	return out, nil
}
