package lastfm

import (
	"encoding/json"
	"strconv"
	"time"
)

// Image is a single artwork entry. Last.fm returns several sizes per
// item, ordered small to extralarge.
type Image struct {
	Size string `json:"size"`
	URL  string `json:"#text"`
}

// TrackDate is the timestamp attached to an already-played track.
// Last.fm omits the date attribute only for the currently-playing
// track.
type TrackDate struct {
	UTS  string `json:"uts"`
	Text string `json:"#text"`
}

// Time returns the played-at timestamp, or the zero time if the UTS
// value is absent or unparseable.
func (d *TrackDate) Time() time.Time {
	if d == nil || d.UTS == "" {
		return time.Time{}
	}
	uts, err := strconv.ParseInt(d.UTS, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(uts, 0)
}

// TrackArtist is the artist entry of a recent track.
type TrackArtist struct {
	Name string
	MBID string
}

// UnmarshalJSON accepts both response shapes: the default form keys
// the artist name as "#text", the extended form as "name".
func (a *TrackArtist) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text string `json:"#text"`
		Name string `json:"name"`
		MBID string `json:"mbid"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.MBID = raw.MBID
	a.Name = raw.Text
	if a.Name == "" {
		a.Name = raw.Name
	}
	return nil
}

// TrackAlbum is the album entry of a recent track.
type TrackAlbum struct {
	Name string `json:"#text"`
	MBID string `json:"mbid"`
}

// TrackAttr carries the per-track attributes Last.fm folds into "@attr".
type TrackAttr struct {
	NowPlaying string `json:"nowplaying"`
}

// Track is a single entry from user.getRecentTracks.
type Track struct {
	Name       string      `json:"name"`
	MBID       string      `json:"mbid"`
	URL        string      `json:"url"`
	Streamable string      `json:"streamable"`
	Artist     TrackArtist `json:"artist"`
	Album      TrackAlbum  `json:"album"`
	Images     []Image     `json:"image"`
	Date       *TrackDate  `json:"date,omitempty"`
	Attr       *TrackAttr  `json:"@attr,omitempty"`
}

// NowPlaying reports whether Last.fm marks this entry as the
// currently-playing track.
func (t *Track) NowPlaying() bool {
	return t.Attr != nil && t.Attr.NowPlaying == "true"
}

// LargestImage returns the largest artwork URL. Last.fm orders image
// entries small to extralarge, so the last entry with a non-empty URL
// wins.
func (t *Track) LargestImage() string {
	for i := len(t.Images) - 1; i >= 0; i-- {
		if t.Images[i].URL != "" {
			return t.Images[i].URL
		}
	}
	return ""
}

// RecentTracksAttr is the paging envelope on user.getRecentTracks.
// Counts are returned by the API as decimal strings.
type RecentTracksAttr struct {
	User       string `json:"user"`
	Page       string `json:"page"`
	PerPage    string `json:"perPage"`
	TotalPages string `json:"totalPages"`
	Total      string `json:"total"`
}

// RecentTracks is the parsed payload of user.getRecentTracks, most
// recent entry first.
type RecentTracks struct {
	Tracks []Track          `json:"track"`
	Attr   RecentTracksAttr `json:"@attr"`
}

// recentTracksResponse is the response envelope of user.getRecentTracks.
type recentTracksResponse struct {
	RecentTracks *RecentTracks `json:"recenttracks"`
}

// Registered is the account creation timestamp from user.getinfo.
type Registered struct {
	UnixTime string `json:"unixtime"`
}

// User is the profile payload of user.getinfo.
type User struct {
	Name        string     `json:"name"`
	RealName    string     `json:"realname"`
	URL         string     `json:"url"`
	Country     string     `json:"country"`
	PlayCount   string     `json:"playcount"`
	ArtistCount string     `json:"artist_count"`
	AlbumCount  string     `json:"album_count"`
	TrackCount  string     `json:"track_count"`
	Images      []Image    `json:"image"`
	Registered  Registered `json:"registered"`
}

// userInfoResponse is the response envelope of user.getinfo.
type userInfoResponse struct {
	User *User `json:"user"`
}

// NowPlaying is the reduced view of the most recent track entry.
//
// Date is empty exactly when the track is currently playing: Last.fm
// omits the date attribute only in that case, so its presence is the
// sole signal distinguishing "last played" from "playing now".
type NowPlaying struct {
	Artist string `json:"artist"`
	Album  string `json:"album"`
	Title  string `json:"title"`
	Image  string `json:"image"`
	Date   string `json:"date,omitempty"`
}

// Playing reports whether the projected track is playing right now.
func (n *NowPlaying) Playing() bool {
	return n.Date == ""
}
