package store

import "github.com/takasapp/takas-admin-api/internal/models"

// The patch helpers implement copy-on-write at slice granularity: the
// returned slice is new and the matched element is a fresh value, so every
// previously handed-out snapshot stays untouched.

func patchUser(users []models.User, id models.ID, patch func(models.User) models.User) ([]models.User, bool) {
	out := make([]models.User, len(users))
	found := false
	for i, u := range users {
		if u.ID == id {
			u = patch(u)
			found = true
		}
		out[i] = u
	}
	return out, found
}

func patchProduct(products []models.Product, id models.ID, patch func(models.Product) models.Product) ([]models.Product, bool) {
	out := make([]models.Product, len(products))
	found := false
	for i, p := range products {
		if p.ID == id {
			p = patch(p)
			found = true
		}
		out[i] = p
	}
	return out, found
}

func patchOffer(offers []models.SwapOffer, id models.ID, patch func(models.SwapOffer) models.SwapOffer) ([]models.SwapOffer, bool) {
	out := make([]models.SwapOffer, len(offers))
	found := false
	for i, o := range offers {
		if o.ID == id {
			o = patch(o)
			found = true
		}
		out[i] = o
	}
	return out, found
}

func patchReport(reports []models.ReportItem, id models.ID, patch func(models.ReportItem) models.ReportItem) ([]models.ReportItem, bool) {
	out := make([]models.ReportItem, len(reports))
	found := false
	for i, r := range reports {
		if r.ID == id {
			r = patch(r)
			found = true
		}
		out[i] = r
	}
	return out, found
}

func patchBanner(banners []models.Banner, id models.ID, patch func(models.Banner) models.Banner) ([]models.Banner, bool) {
	out := make([]models.Banner, len(banners))
	found := false
	for i, b := range banners {
		if b.ID == id {
			b = patch(b)
			found = true
		}
		out[i] = b
	}
	return out, found
}
