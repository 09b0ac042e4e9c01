package domain

// StatusView is the presentational vocabulary for a status: badge label,
// color classes and icon name. The divergence between product and service
// wording (Started shows as "Out for Delivery" for products) is part of the
// dashboard's observable contract.
type StatusView struct {
	Value      OrderStatus
	Label      string
	ColorClass string
	Icon       string
}

var requestStatusViews = []StatusView{
	{OrderStatusPending, "Pending", "bg-yellow-100 text-yellow-800", "clock"},
	{OrderStatusAccepted, "Accepted", "bg-green-100 text-green-800", "check-circle"},
	{OrderStatusRejected, "Rejected", "bg-red-100 text-red-800", "x-circle"},
}

var productProgressViews = []StatusView{
	{OrderStatusAccepted, "Accepted", "bg-green-100 text-green-800", "check-circle"},
	{OrderStatusStarted, "Out for Delivery", "bg-blue-100 text-blue-800", "truck"},
	{OrderStatusCompleted, "Delivered", "bg-emerald-100 text-emerald-800", "package"},
}

var serviceProgressViews = []StatusView{
	{OrderStatusAccepted, "Accepted", "bg-green-100 text-green-800", "check-circle"},
	{OrderStatusStarted, "Started", "bg-blue-100 text-blue-800", "timer"},
	{OrderStatusCompleted, "Completed", "bg-emerald-100 text-emerald-800", "check-circle"},
}

func viewsFor(orderType OrderType, status OrderStatus) []StatusView {
	if ValidForPhase(PhaseRequest, status) && status != OrderStatusAccepted {
		return requestStatusViews
	}
	if orderType == OrderTypeService {
		return serviceProgressViews
	}
	return productProgressViews
}

// StatusViewFor resolves the display vocabulary for a status. Unknown
// statuses fall back to the first entry of the applicable table instead of
// failing, so a malformed record still renders.
func StatusViewFor(orderType OrderType, status OrderStatus) StatusView {
	table := viewsFor(orderType, status)
	for _, v := range table {
		if v.Value == status {
			return v
		}
	}
	return table[0]
}

// LabelFor is StatusViewFor reduced to the badge text.
func LabelFor(orderType OrderType, status OrderStatus) string {
	return StatusViewFor(orderType, status).Label
}
