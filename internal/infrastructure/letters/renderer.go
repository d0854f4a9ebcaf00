// Package letters renders and delivers order acknowledgment letters.
package letters

import (
	"context"

	"github.com/osteele/liquid"
	"github.com/samber/lo"

	"github.com/ordertaking/backend/internal/domain/ordering"
)

// DefaultTemplate is the acknowledgment letter used when no custom template
// is configured.
const DefaultTemplate = `Dear {{ first_name }} {{ last_name }},

Thank you for your order {{ order_id }}.
{% if amount_to_bill != "0" %}You will be billed {{ amount_to_bill }}.{% else %}There is nothing to bill for this order.{% endif %}

Items:
{% for line in lines %}- {{ line.product_code }} x {{ line.quantity }} at {{ line.line_price }}
{% endfor %}`

// Renderer renders acknowledgment letters from a Liquid template
type Renderer struct {
	engine   *liquid.Engine
	template *liquid.Template
}

// NewRenderer parses the template and returns a Renderer
func NewRenderer(template string) (*Renderer, error) {
	engine := liquid.NewEngine()
	tpl, err := engine.ParseString(template)
	if err != nil {
		return nil, err
	}
	return &Renderer{engine: engine, template: tpl}, nil
}

// Letter renders the acknowledgment letter for a priced order. It satisfies
// the ordering.CreateAcknowledgmentLetter contract.
func (r *Renderer) Letter(_ context.Context, order ordering.PricedOrder) (ordering.Letter, error) {
	bindings := map[string]any{
		"order_id":       order.OrderID.Value(),
		"first_name":     order.CustomerInfo.Name.FirstName.Value(),
		"last_name":      order.CustomerInfo.Name.LastName.Value(),
		"amount_to_bill": order.AmountToBill.Value().String(),
		"lines": lo.Map(order.Lines, func(line ordering.PricedOrderLine, _ int) map[string]any {
			return map[string]any{
				"product_code": line.ProductCode.Value(),
				"quantity":     line.Quantity.Value().String(),
				"line_price":   line.LinePrice.Value().String(),
			}
		}),
	}

	body, err := r.template.RenderString(bindings)
	if err != nil {
		return ordering.Letter{}, err
	}
	return ordering.Letter{Body: body}, nil
}
