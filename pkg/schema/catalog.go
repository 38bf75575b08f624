package schema

import "time"

// ComponentType names one of the four build slots.
type ComponentType string

const (
	ComponentCPU     ComponentType = "cpu"
	ComponentGPU     ComponentType = "gpu"
	ComponentRAM     ComponentType = "ram"
	ComponentStorage ComponentType = "storage"
)

// ComponentTypes lists the build slots in display order.
var ComponentTypes = []ComponentType{ComponentCPU, ComponentGPU, ComponentRAM, ComponentStorage}

// Product is a peripheral sold in the storefront.
type Product struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Price       float64           `json:"price"`
	Rating      float64           `json:"rating"`
	Image       string            `json:"image"`
	Description string            `json:"description"`
	Specs       map[string]string `json:"specs"`
}

// Component is a part selectable in the PC builder.
type Component struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Price float64           `json:"price"`
	Image string            `json:"image,omitempty"`
	Specs map[string]string `json:"specs,omitempty"`
}

// BuildRequest carries one component per slot. A nil slot means the
// component was not supplied.
type BuildRequest struct {
	CPU     *Component `json:"cpu"`
	GPU     *Component `json:"gpu"`
	RAM     *Component `json:"ram"`
	Storage *Component `json:"storage"`
}

// Build is the echoed component selection of a quote.
type Build struct {
	CPU     Component `json:"cpu"`
	GPU     Component `json:"gpu"`
	RAM     Component `json:"ram"`
	Storage Component `json:"storage"`
}

// BuildQuote is the result of the build-price calculator. TotalPrice is
// formatted with two decimals.
type BuildQuote struct {
	Message     string    `json:"message"`
	Build       Build     `json:"build"`
	TotalPrice  string    `json:"totalPrice"`
	Performance string    `json:"performance"`
	Timestamp   time.Time `json:"timestamp"`
}

// ContactMessage is a contact-form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
