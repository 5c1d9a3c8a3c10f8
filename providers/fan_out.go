package providers

import "github.com/go-home-io/gluehome/plugins/common"

// IInternalFanOutProvider defines internal interface for the fan-out channel.
// It extends regular IFanOutProvider with the publishing side.
type IInternalFanOutProvider interface {
	common.IFanOutProvider

	ChannelInLockUpdates() chan *common.MsgLockUpdate
	Stop()
}
