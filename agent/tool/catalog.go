package tool

import "github.com/cloudwego/eino/schema"

// Tool names and argument fields are a wire contract with the language
// model; changing them breaks tool-call parsing.
const (
	ToolRegisterLead   = "register_lead"
	ToolSendInfoFolder = "send_info_folder"
	ToolSendTourVideo  = "send_tour_video"
	ToolScheduleVisit  = "schedule_visit"
	ToolRequestHuman   = "request_human"
)

// Infos declares the tools bound to the first model call of every turn.
func Infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolRegisterLead,
			Desc: "Registra ou atualiza o cadastro do cliente interessado (lead).",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"nome":      {Type: schema.String, Desc: "Nome do cliente, se ele informou"},
				"interesse": {Type: schema.String, Desc: "Nível ou tipo de interesse, ex: informacao, visita, aluguel"},
			}),
		},
		{
			Name:        ToolSendInfoFolder,
			Desc:        "Gera e envia o folder em PDF com as informações das kitnets.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		{
			Name:        ToolSendTourVideo,
			Desc:        "Envia o vídeo de tour de uma kitnet disponível.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		{
			Name: ToolScheduleVisit,
			Desc: "Agenda uma visita presencial no dia e horário pedidos pelo cliente.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"data_horario": {Type: schema.String, Desc: "Dia e horário desejados, como o cliente falou", Required: true},
			}),
		},
		{
			Name:        ToolRequestHuman,
			Desc:        "Sinaliza que o cliente quer falar com um atendente humano.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
	}
}
