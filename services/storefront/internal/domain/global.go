package domain

// Banner is the announcement bar above the navbar.
type Banner struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
}

// NavItem is a link inside a navbar dropdown section.
type NavItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NavSection groups dropdown links under a heading.
type NavSection struct {
	ID    int       `json:"id"`
	Title string    `json:"title"`
	Items []NavItem `json:"items"`
}

// NavbarItem is a top-level navbar entry with its dropdown sections.
type NavbarItem struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Sections []NavSection `json:"sections"`
}

// Navbar is the site navigation.
type Navbar struct {
	ID    int          `json:"id"`
	Items []NavbarItem `json:"items"`
}

// FooterLink is one footer link. External links open in a new tab.
type FooterLink struct {
	ID         int    `json:"id"`
	Label      string `json:"label"`
	URL        string `json:"url"`
	IsExternal bool   `json:"is_external"`
}

// FooterSection is a titled column of footer links.
type FooterSection struct {
	ID    int          `json:"id"`
	Title string       `json:"title"`
	Links []FooterLink `json:"links"`
}

// PaymentCard is an accepted payment method shown in the footer. Only the
// logo URL is populated.
type PaymentCard struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo *Image `json:"logo"`
}

// Newsletter is the signup prompt shown in the footer.
type Newsletter struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Placeholder string `json:"placeholder"`
}

// Footer is the site footer.
type Footer struct {
	ID           int             `json:"id"`
	Sections     []FooterSection `json:"sections"`
	PaymentCards []PaymentCard   `json:"payment_cards"`
	Newsletter   *Newsletter     `json:"newsletter"`
}

// Global is the site furniture shared by every page.
type Global struct {
	ID         int     `json:"id"`
	DocumentID string  `json:"documentId,omitempty"`
	Banner     *Banner `json:"banner"`
	Navbar     *Navbar `json:"navbar"`
	Footer     *Footer `json:"footer"`
}
