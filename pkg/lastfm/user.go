package lastfm

import (
	"context"
	"strconv"
)

// UserService provides the read-only user endpoints of the Last.fm API.
//
// None of its operations require authentication or request signing.
type UserService struct {
	client *Client
}

// RecentTracksParams are the request parameters for RecentTracks.
//
// Username is required. The remaining fields are optional and passed
// to the API verbatim when set; the API applies its own defaults and
// bounds.
type RecentTracksParams struct {
	Username string // Required: Last.fm username
	Limit    int    // Optional: tracks per page, API default when 0
	Page     int    // Optional: page number, API default when 0
	Extended bool   // Optional: request extended track info
}

// RecentTracks fetches the user's listening history, most recent
// entry first. If a track is currently playing it appears as the
// first entry, marked via "@attr".nowplaying and carrying no date.
//
// Example:
//
//	recent, err := client.User().RecentTracks(ctx, lastfm.RecentTracksParams{
//	    Username: "alice",
//	    Limit:    10,
//	})
//	if err != nil {
//	    log.Printf("Failed to fetch recent tracks: %v", err)
//	}
func (u *UserService) RecentTracks(ctx context.Context, p RecentTracksParams) (*RecentTracks, error) {
	if p.Username == "" {
		return nil, &InvalidParameterError{Param: "username", Reason: "must not be empty"}
	}

	params := map[string]string{
		"user": p.Username,
	}
	if p.Limit > 0 {
		params["limit"] = strconv.Itoa(p.Limit)
	}
	if p.Page > 0 {
		params["page"] = strconv.Itoa(p.Page)
	}
	if p.Extended {
		params["extended"] = "1"
	}

	body, err := u.client.call(ctx, "user.getrecenttracks", params)
	if err != nil {
		return nil, err
	}

	var resp recentTracksResponse
	if err := decodeBody(body, &resp); err != nil {
		return nil, err
	}
	if resp.RecentTracks == nil {
		return nil, &MalformedResponseError{Path: "recenttracks"}
	}

	return resp.RecentTracks, nil
}

// Info fetches the user's public profile via user.getinfo.
func (u *UserService) Info(ctx context.Context, username string) (*User, error) {
	if username == "" {
		return nil, &InvalidParameterError{Param: "username", Reason: "must not be empty"}
	}

	body, err := u.client.call(ctx, "user.getinfo", map[string]string{"user": username})
	if err != nil {
		return nil, err
	}

	var resp userInfoResponse
	if err := decodeBody(body, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &MalformedResponseError{Path: "user"}
	}

	return resp.User, nil
}

// NowPlaying fetches the most recent track entry for the user and
// projects it into a NowPlaying value.
//
// The projection's Date is taken from the entry's date attribute and
// is empty exactly when that attribute is absent, which Last.fm does
// only for the currently-playing track. The artwork URL is the
// largest image offered: Last.fm orders image entries small to
// extralarge, so the last entry with a non-empty URL wins.
func (u *UserService) NowPlaying(ctx context.Context, username string) (*NowPlaying, error) {
	recent, err := u.RecentTracks(ctx, RecentTracksParams{Username: username, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(recent.Tracks) == 0 {
		return nil, &MalformedResponseError{Path: "recenttracks.track[0]"}
	}

	track := recent.Tracks[0]
	np := &NowPlaying{
		Artist: track.Artist.Name,
		Album:  track.Album.Name,
		Title:  track.Name,
		Image:  track.LargestImage(),
	}
	if track.Date != nil {
		np.Date = track.Date.Text
	}

	return np, nil
}
