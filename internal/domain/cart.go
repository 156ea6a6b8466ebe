package domain

// CartLine is one menu item plus quantity with a price snapshot taken when the
// line was first added.
type CartLine struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

// Cart accumulates a customer's pre-order lines for a single cafe.
type Cart struct {
	CafeID string     `json:"cafeId"`
	Lines  []CartLine `json:"lines"`
}

// AddLine increments the quantity of an existing line for the item or appends
// a new line with quantity 1.
func (c *Cart) AddLine(item MenuItem) {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == item.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   1,
	})
}

// ChangeQuantity adjusts a line's quantity by delta. The line is removed once
// its quantity drops to zero or below. A missing line is a no-op.
func (c *Cart) ChangeQuantity(menuItemID string, delta int) {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID != menuItemID {
			continue
		}
		if c.Lines[i].Quantity+delta <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		} else {
			c.Lines[i].Quantity += delta
		}
		return
	}
}

func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}
