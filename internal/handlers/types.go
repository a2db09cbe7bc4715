package handlers

import "time"

// ResolveRouteRequest is the request for resolving a path segment.
type ResolveRouteRequest struct {
	Segment string `doc:"Path segment to resolve" example:"macbook-pro-2021-Ab12Cd" maxLength:"255" path:"segment"`
}

// ResolveRouteResponse tells the client which page to mount.
type ResolveRouteResponse struct {
	Body struct {
		State       string `doc:"Resolution state"                    enum:"listing,profile"  json:"state"`
		Page        string `doc:"Page component to mount"             enum:"listing,profile"  json:"page"`
		Shape       string `doc:"Identifier shape that matched"       example:"seo_listing_url" json:"shape"`
		ListingID   string `doc:"Listing ID when state is listing"    json:"listingId,omitempty"`
		ProfileID   string `doc:"6-digit profile code when a profile" json:"profileId,omitempty"`
		ProfileUUID string `doc:"Profile UUID when a profile"         json:"profileUuid,omitempty"`
	}
}

// SEOURLRequest is the request for getting or creating a listing's SEO URL.
type SEOURLRequest struct {
	ListingID string `doc:"Listing ID" maxLength:"64" minLength:"1" path:"listingId"`
	Body      struct {
		Title string `doc:"Listing title the slug is derived from" example:"Київ квартира 2 кімнати" json:"title" maxLength:"500"`
	}
}

// SEOURLResponse is the canonical URL for a listing.
type SEOURLResponse struct {
	Body struct {
		FullURL  string `doc:"Canonical listing path"                  example:"/kyyiv-kvartyra-2-kimnaty-Ab12Cd" json:"fullUrl"`
		Fallback bool   `doc:"True when FullURL is the non-SEO path"   json:"fallback"`
	}
}

// CreateProfileRequest is the request body for creating a profile.
type CreateProfileRequest struct {
	Body struct {
		DisplayName string `doc:"Public display name" example:"Olena" json:"displayName" maxLength:"100"`
	}
}

// ProfileResponse describes a profile and its identifiers.
type ProfileResponse struct {
	Body struct {
		ID          string    `doc:"Profile UUID"           json:"id"`
		ProfileID   string    `doc:"6-digit profile code"   example:"482913" json:"profileId"`
		DisplayName string    `doc:"Public display name"    json:"displayName"`
		CreatedAt   time.Time `doc:"Creation time"          json:"createdAt"`
	}
}

// CategoryItem is one listing category.
type CategoryItem struct {
	Key  string `doc:"Category key"      example:"electronics"          json:"key"`
	Icon string `doc:"Icon asset path"   example:"icons/smartphone.svg" json:"icon"`
}

// ListCategoriesResponse lists every listing category.
type ListCategoriesResponse struct {
	Body struct {
		Categories []CategoryItem `json:"categories"`
	}
}
