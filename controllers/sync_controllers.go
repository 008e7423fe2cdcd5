package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lucabarone/trattoria-pos/realtime"
	"github.com/lucabarone/trattoria-pos/repository"
	"github.com/lucabarone/trattoria-pos/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // registers live on the venue LAN
	},
}

type SyncController struct {
	Repo repository.Repository
	Hub  *realtime.Hub
}

func NewSyncController(repo repository.Repository, hub *realtime.Hub) *SyncController {
	return &SyncController{Repo: repo, Hub: hub}
}

// Handle -> the /ws endpoint. The connection joins the hub untagged;
// once the register sends REGISTER_CLIENT it is tagged and immediately
// receives an INITIAL_SYNC snapshot of the active orders, so a register
// that was offline catches up on whatever it missed.
func (sc *SyncController) Handle(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade: %v", err)
		return
	}

	sc.Hub.Add(ws)
	defer sc.Hub.Remove(ws)

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			break
		}

		var msg realtime.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			// Malformed frames are logged and swallowed, the client
			// stays connected.
			utils.ErrorLogger.Printf("websocket: malformed message: %v", err)
			continue
		}

		if msg.Type == realtime.EventRegisterClient && msg.RegisterID != 0 {
			sc.Hub.Identify(ws, msg.RegisterID)
			utils.InfoLogger.Printf("client registered as CASSA %d", msg.RegisterID)

			orders, err := sc.Repo.GetActiveOrders()
			if err != nil {
				utils.ErrorLogger.Printf("initial sync for CASSA %d: %v", msg.RegisterID, err)
				continue
			}
			if err := sc.Hub.SendTo(ws, realtime.Message{
				Type: realtime.EventInitialSync,
				Data: orders,
			}); err != nil {
				utils.ErrorLogger.Printf("initial sync send to CASSA %d: %v", msg.RegisterID, err)
			}
		}
	}
}
