package domain

// Корзина - чистая машина состояний без ввода-вывода.
// Хранение (Redis) и отображение (JSON view) подключаются снаружи.

// CartState состояние корзины в целом
type CartState string

const (
	CartEmpty     CartState = "empty"
	CartPopulated CartState = "populated"
)

// CartSupplement добавка к позиции корзины
// ProductID ссылается на каталожную позицию вида supplement:
// название и цена берутся из каталога, как и для основной позиции
type CartSupplement struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Qty       int     `json:"qty"`
}

// CartLine позиция корзины
type CartLine struct {
	ProductID   int64            `json:"product_id"`
	Name        string           `json:"name"`
	UnitPrice   float64          `json:"unit_price"`
	Qty         int              `json:"qty"`
	Supplements []CartSupplement `json:"supplements,omitempty"`
}

// Cart корзина пользователя
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// NewCart создает пустую корзину
func NewCart() *Cart {
	return &Cart{Lines: []CartLine{}}
}

// State возвращает текущее состояние корзины
func (c *Cart) State() CartState {
	if len(c.Lines) == 0 {
		return CartEmpty
	}
	return CartPopulated
}

// AddItem добавляет позицию в корзину
// Если позиция с тем же ProductID уже есть (добавки не учитываются),
// увеличивает её количество, иначе добавляет новую строку
func (c *Cart) AddItem(line CartLine) {
	line.UnitPrice = sanitizePrice(line.UnitPrice)
	line.Qty = sanitizeQty(line.Qty)
	for i := range line.Supplements {
		line.Supplements[i].UnitPrice = sanitizePrice(line.Supplements[i].UnitPrice)
		line.Supplements[i].Qty = sanitizeQty(line.Supplements[i].Qty)
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Qty += line.Qty
			return
		}
	}

	c.Lines = append(c.Lines, line)
}

// ChangeQty изменяет количество позиции на delta с нижней границей 1
// Декремент ниже 1 - no-op: позиция удаляется только явно через RemoveItem
// Возвращает false при некорректном индексе
func (c *Cart) ChangeQty(index int, delta int) bool {
	if index < 0 || index >= len(c.Lines) {
		return false
	}

	newQty := sanitizeQty(c.Lines[index].Qty) + delta
	if newQty < 1 {
		newQty = 1
	}
	c.Lines[index].Qty = newQty
	return true
}

// RemoveItem безусловно удаляет позицию по индексу
// Возвращает false при некорректном индексе
func (c *Cart) RemoveItem(index int) bool {
	if index < 0 || index >= len(c.Lines) {
		return false
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	return true
}

// Clear опустошает корзину (после успешной оплаты)
func (c *Cart) Clear() {
	c.Lines = nil
}

// Total итоговая стоимость позиции: цена * количество + стоимость добавок
func (l CartLine) Total() float64 {
	total := sanitizePrice(l.UnitPrice) * float64(sanitizeQty(l.Qty))
	for _, s := range l.Supplements {
		total += sanitizePrice(s.UnitPrice) * float64(sanitizeQty(s.Qty))
	}
	return total
}

// Total итоговая стоимость корзины
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Total()
	}
	return total
}

// ItemCount суммарное количество по всем позициям (добавки не учитываются)
// Значение счётчика корзины в шапке сайта
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += sanitizeQty(l.Qty)
	}
	return count
}

// sanitizePrice отрицательные и некорректные цены приводятся к 0
func sanitizePrice(p float64) float64 {
	if p < 0 || p != p { // p != p отсекает NaN
		return 0
	}
	return p
}

// sanitizeQty количество меньше 1 приводится к 1
func sanitizeQty(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
