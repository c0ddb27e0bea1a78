package dataset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/takasapp/takas-admin-api/internal/models"
)

var roleWeights = []weightedChoice[models.Role]{
	{Weight: 92, Value: models.RoleUser},
	{Weight: 6, Value: models.RoleModerator},
	{Weight: 2, Value: models.RoleAdmin},
}

// turkishASCII folds Turkish letters into their closest ASCII form before
// usernames and email addresses are derived.
var turkishASCII = strings.NewReplacer(
	"ı", "i", "İ", "i",
	"ş", "s", "Ş", "s",
	"ğ", "g", "Ğ", "g",
	"ç", "c", "Ç", "c",
	"ö", "o", "Ö", "o",
	"ü", "u", "Ü", "u",
)

var nonUsernameChars = regexp.MustCompile(`[^a-z0-9.]`)

func nameSlug(firstName, lastName string) string {
	base := turkishASCII.Replace(firstName + "." + lastName)
	base = strings.ToLower(base)
	return nonUsernameChars.ReplaceAllString(base, "")
}

func (gen *generator) generateUsers() {
	users := make([]models.User, 0, gen.opts.Users)
	for idx := 0; idx < gen.opts.Users; idx++ {
		users = append(users, gen.makeUser(idx))
	}
	gen.snap.Users = users
}

// makeUser builds one account. The first generated user is always an admin
// so the panel has a known operator account; the rest roll the weighted
// role table.
func (gen *generator) makeUser(idx int) models.User {
	firstName := pickOne(gen.g, firstNames)
	lastName := pickOne(gen.g, lastNames)
	city := pickOne(gen.g, turkishCities)
	fullName := firstName + " " + lastName

	role := models.RoleAdmin
	if idx != 0 {
		role = weightedPick(gen.g, roleWeights)
	}

	slug := nameSlug(firstName, lastName)
	username := fmt.Sprintf("@%s%d", slug, gen.g.intBetween(0, 999))
	email := fmt.Sprintf("%s%d@%s", slug, gen.g.intBetween(1, 99), pickOne(gen.g, emailDomains))
	phone := fmt.Sprintf("+90 5%d%d %d %d %d",
		gen.g.intBetween(0, 9),
		gen.g.intBetween(100, 999),
		gen.g.intBetween(100, 999),
		gen.g.intBetween(10, 99),
		gen.g.intBetween(10, 99),
	)
	avatar := fmt.Sprintf("https://i.pravatar.cc/150?img=%d", gen.g.intBetween(1, 70))
	address := fmt.Sprintf("%s No:%d", pickOne(gen.g, streetNames), gen.g.intBetween(1, 120))

	return models.User{
		ID:        models.NumericID(idx + 1),
		FirstName: firstName,
		LastName:  lastName,
		FullName:  fullName,
		Username:  username,
		Email:     email,
		Phone:     phone,
		Avatar:    avatar,
		Bio:       pickOne(gen.g, turkishBios),

		Location: city + ", " + countryName,
		City:     city,
		Country:  countryName,
		Address:  address,

		Verified:     gen.g.chance(0.25),
		Role:         role,
		OnlineStatus: gen.g.chance(0.35),
		IsPremium:    gen.g.chance(0.18),

		JoinDate:     gen.randomDaysAgo(0, 900),
		LastActive:   gen.randomDaysAgo(0, 10),
		Rating:       gen.g.floatBetween(3.2, 5.0, 1),
		ResponseRate: gen.g.intBetween(40, 100),

		FavoritesProductIDs: []models.ID{},
		FollowersCount:      gen.g.intBetween(0, 20000),
		FollowingCount:      gen.g.intBetween(0, 5000),
	}
}
