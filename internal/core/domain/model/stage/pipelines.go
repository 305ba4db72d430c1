package stage

// Built-in stage ids shared by the default pipelines.
const (
	New            ID = "novo"
	Confirmed      ID = "confirmado"
	Preparing      ID = "preparando"
	Ready          ID = "pronto"
	OutForDelivery ID = "saiu_para_entrega"
	Delivered      ID = "entregue"
	Cancelled      ID = "cancelado"
)

// DineInPipeline returns the default pipeline for dine-in orders:
// novo → confirmado → preparando → pronto → entregue, with cancelado
// as the terminal stage.
func DineInPipeline() Pipeline {
	return Pipeline{
		stages: []Stage{
			{id: New, label: "Novo", color: "#3B82F6"},
			{id: Confirmed, label: "Confirmado", color: "#8B5CF6"},
			{id: Preparing, label: "Preparando", color: "#F59E0B"},
			{id: Ready, label: "Pronto", color: "#10B981"},
			{id: Delivered, label: "Entregue", color: "#6B7280"},
			{id: Cancelled, label: "Cancelado", color: "#EF4444"},
		},
		terminalID: Cancelled,
	}
}

// DeliveryPipeline returns the default pipeline for delivery orders.
// It is the dine-in pipeline with an additional saiu_para_entrega stage
// inserted between pronto and entregue; cancellation semantics are
// identical.
func DeliveryPipeline() Pipeline {
	return Pipeline{
		stages: []Stage{
			{id: New, label: "Novo", color: "#3B82F6"},
			{id: Confirmed, label: "Confirmado", color: "#8B5CF6"},
			{id: Preparing, label: "Preparando", color: "#F59E0B"},
			{id: Ready, label: "Pronto", color: "#10B981"},
			{id: OutForDelivery, label: "Saiu para entrega", color: "#06B6D4"},
			{id: Delivered, label: "Entregue", color: "#6B7280"},
			{id: Cancelled, label: "Cancelado", color: "#EF4444"},
		},
		terminalID: Cancelled,
	}
}
