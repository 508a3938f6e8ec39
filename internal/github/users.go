package github

import "context"

// FetchProfile retrieves the public profile of user.
func FetchProfile(ctx context.Context, client Client, user string) (Profile, error) {
	u, _, err := client.GetUser(ctx, user)
	if err != nil {
		return Profile{}, wrapStatus(err)
	}
	return Profile{
		Login:     u.GetLogin(),
		Name:      u.GetName(),
		Bio:       u.GetBio(),
		Location:  u.GetLocation(),
		AvatarURL: u.GetAvatarURL(),
		HTMLURL:   u.GetHTMLURL(),
		Followers: u.GetFollowers(),
		Following: u.GetFollowing(),
	}, nil
}
